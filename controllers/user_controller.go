package controllers

import (
	"fmt"
	"gin-videoapi/dto"
	"gin-videoapi/models"
	"gin-videoapi/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	FindAll(ctx *gin.Context)
	DeleteAll(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll()
	if err != nil {
		respondUnexpected(ctx, "Find users error", err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	ctx.JSON(http.StatusOK, dto.UsersResponse{Users: users})
}

func (c *UserController) DeleteAll(ctx *gin.Context) {
	count, err := c.service.DeleteAll()
	if err != nil {
		respondUnexpected(ctx, "Delete users error", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("%d row(s) deleted", count)})
}
