package controllers

import (
	"gin-videoapi/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IHealthController interface {
	Health(ctx *gin.Context)
}

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) IHealthController {
	return &HealthController{db: db}
}

func (c *HealthController) Health(ctx *gin.Context) {
	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		logger.Log.Warn("Health check failed", zap.Error(err))
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
