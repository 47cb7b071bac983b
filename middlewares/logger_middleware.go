package middlewares

import (
	"gin-videoapi/logger"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		fields := []zap.Field{
			zap.String("method", ctx.Request.Method),
			zap.String("path", path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("clientIp", ctx.ClientIP()),
		}
		if len(ctx.Errors) > 0 {
			fields = append(fields, zap.String("errors", ctx.Errors.String()))
		}

		switch {
		case ctx.Writer.Status() >= 500:
			logger.Log.Error("Request completed", fields...)
		case ctx.Writer.Status() >= 400:
			logger.Log.Warn("Request completed", fields...)
		default:
			logger.Log.Info("Request completed", fields...)
		}
	}
}
