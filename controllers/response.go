package controllers

import (
	"gin-videoapi/constants"
	"gin-videoapi/dto"
	"gin-videoapi/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondBindError は不足しているフィールドごとのメッセージを400で返す
func respondBindError(ctx *gin.Context, input interface{}, err error, helps map[string]string) {
	if fields, ok := dto.FieldErrors(input, err, helps); ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": fields})
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput})
}

// respondUnexpected は詳細をログにだけ残し、クライアントには固定の文言を返す
func respondUnexpected(ctx *gin.Context, msg string, err error) {
	logger.Log.Error(msg,
		zap.Error(err),
		zap.String("path", ctx.Request.URL.Path),
	)
	_ = ctx.Error(err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
}
