package controllers

import (
	"errors"
	"gin-videoapi/constants"
	"gin-videoapi/dto"
	"gin-videoapi/services"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var videoHelps = map[string]string{
	"name":  constants.HelpVideoName,
	"views": constants.HelpVideoViews,
	"likes": constants.HelpVideoLikes,
}

type IVideoController interface {
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type VideoController struct {
	service services.IVideoService
}

func NewVideoController(service services.IVideoService) IVideoController {
	return &VideoController{service: service}
}

func (c *VideoController) FindById(ctx *gin.Context) {
	videoID, ok := parseVideoID(ctx)
	if !ok {
		return
	}

	video, err := c.service.FindById(videoID)
	if err != nil {
		if errors.Is(err, services.ErrVideoNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrVideoNotFound})
			return
		}
		respondUnexpected(ctx, "Find video error", err)
		return
	}

	ctx.JSON(http.StatusOK, video)
}

func (c *VideoController) Create(ctx *gin.Context) {
	videoID, ok := parseVideoID(ctx)
	if !ok {
		return
	}

	var input dto.CreateVideoInput
	if err := ctx.ShouldBind(&input); err != nil {
		respondBindError(ctx, &input, err, videoHelps)
		return
	}

	newVideo, err := c.service.Create(videoID, input)
	if err != nil {
		if errors.Is(err, services.ErrVideoExists) {
			ctx.JSON(http.StatusConflict, gin.H{"message": constants.ErrVideoExists})
			return
		}
		respondUnexpected(ctx, "Create video error", err)
		return
	}

	ctx.JSON(http.StatusCreated, newVideo)
}

func (c *VideoController) Update(ctx *gin.Context) {
	videoID, ok := parseVideoID(ctx)
	if !ok {
		return
	}

	// 全項目が任意なので空のJSONボディもエラーにしない
	var input dto.UpdateVideoInput
	if err := ctx.ShouldBind(&input); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(ctx, &input, err, videoHelps)
		return
	}

	updatedVideo, err := c.service.Update(videoID, input)
	if err != nil {
		if errors.Is(err, services.ErrVideoNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrVideoNotUpdated})
			return
		}
		respondUnexpected(ctx, "Update video error", err)
		return
	}

	ctx.JSON(http.StatusOK, updatedVideo)
}

func (c *VideoController) Delete(ctx *gin.Context) {
	videoID, ok := parseVideoID(ctx)
	if !ok {
		return
	}

	err := c.service.Delete(videoID)
	if err != nil {
		if errors.Is(err, services.ErrVideoNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrVideoNotDeleted})
			return
		}
		respondUnexpected(ctx, "Delete video error", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseVideoID(ctx *gin.Context) (uint, bool) {
	videoID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || videoID == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return 0, false
	}
	return uint(videoID), true
}
