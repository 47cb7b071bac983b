package middlewares

import (
	"errors"
	"gin-videoapi/constants"
	"gin-videoapi/logger"
	"gin-videoapi/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware は指定した種別の有効なトークンを要求する
func AuthMiddleware(authService services.IAuthService, tokenType string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(ctx, constants.ErrMissingAuth)
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(ctx, constants.ErrInvalidAuth)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := authService.VerifyToken(tokenString, tokenType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTokenRevoked):
				abortUnauthorized(ctx, constants.ErrTokenRevoked)
			case errors.Is(err, services.ErrWrongTokenType):
				if tokenType == constants.TokenTypeRefresh {
					abortUnauthorized(ctx, constants.ErrRefreshRequired)
				} else {
					abortUnauthorized(ctx, constants.ErrAccessRequired)
				}
			case errors.Is(err, services.ErrInvalidToken):
				abortUnauthorized(ctx, constants.ErrTokenInvalid)
			default:
				logger.Log.Error("Token verification failed", zap.Error(err))
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
			}
			return
		}

		ctx.Set(constants.ContextKeyClaims, claims)

		ctx.Next()
	}
}

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
}

// ClaimsFromContext はAuthMiddlewareが設定したクレームを取り出す
func ClaimsFromContext(ctx *gin.Context) (*services.TokenClaims, bool) {
	value, exists := ctx.Get(constants.ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*services.TokenClaims)
	return claims, ok
}
