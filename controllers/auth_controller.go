package controllers

import (
	"errors"
	"fmt"
	"gin-videoapi/constants"
	"gin-videoapi/dto"
	"gin-videoapi/logger"
	"gin-videoapi/middlewares"
	"gin-videoapi/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var credentialHelps = map[string]string{
	"username": constants.HelpBlankField,
	"password": constants.HelpBlankField,
}

type IAuthController interface {
	Signup(ctx *gin.Context)
	Login(ctx *gin.Context)
	LogoutAccess(ctx *gin.Context)
	LogoutRefresh(ctx *gin.Context)
	RefreshToken(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBind(&input); err != nil {
		respondBindError(ctx, &input, err, credentialHelps)
		return
	}

	tokenPair, err := c.service.Signup(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			ctx.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("User %s already exists", input.Username)})
			return
		}
		respondUnexpected(ctx, "Signup error", err)
		return
	}

	logger.Log.Info("User registered", zap.String("username", input.Username))
	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Message:      fmt.Sprintf("User %s was created", input.Username),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBind(&input); err != nil {
		respondBindError(ctx, &input, err, credentialHelps)
		return
	}

	tokenPair, err := c.service.Login(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": fmt.Sprintf("User %s doesn't exist", input.Username)})
		case errors.Is(err, services.ErrInvalidCredentials):
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": constants.ErrWrongCredentials})
		default:
			respondUnexpected(ctx, "Login error", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Message:      fmt.Sprintf("Logged in as %s", input.Username),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	})
}

func (c *AuthController) LogoutAccess(ctx *gin.Context) {
	c.logout(ctx, constants.MsgAccessRevoked)
}

func (c *AuthController) LogoutRefresh(ctx *gin.Context) {
	c.logout(ctx, constants.MsgRefreshRevoked)
}

func (c *AuthController) logout(ctx *gin.Context, message string) {
	claims, ok := middlewares.ClaimsFromContext(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if err := c.service.Logout(claims); err != nil {
		respondUnexpected(ctx, "Logout error", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

func (c *AuthController) RefreshToken(ctx *gin.Context) {
	claims, ok := middlewares.ClaimsFromContext(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	accessToken, err := c.service.Refresh(claims)
	if err != nil {
		respondUnexpected(ctx, "Refresh token error", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshResponse{AccessToken: accessToken})
}
