package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/app/services"
	"github.com/harutok/practiceshare/internal/middleware"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
)

// UploadController handles file upload and media endpoints
type UploadController struct {
	mediaService services.MediaService
}

// NewUploadController creates a new UploadController
func NewUploadController(mediaService services.MediaService) *UploadController {
	return &UploadController{
		mediaService: mediaService,
	}
}

// Upload handles a multipart file upload
// @Summary Upload a file
// @Description Stores a file (images, PDF or video, max 50MB) and records its metadata
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Param practiceId formData string false "Practice to attach the file to"
// @Success 201 {object} dto.APIResponse{data=models.Media} "Stored file"
// @Failure 400 {object} dto.APIResponse "No file uploaded"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 404 {object} dto.APIResponse "Practice not found"
// @Failure 413 {object} dto.APIResponse "File too large"
// @Failure 415 {object} dto.APIResponse "Unsupported file type"
// @Router /admin/upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("no file was uploaded"))
		return
	}

	var practiceID *string
	if raw := ctx.PostForm("practiceId"); raw != "" {
		practiceID = &raw
	}

	media, err := c.mediaService.Upload(ctx.Request.Context(), fileHeader, practiceID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(media))
}

// Delete handles media deletion
// @Summary Delete a file
// @Description Unlinks the stored file and removes its metadata; files attached to a practice require ownership
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param id path string true "Media id"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Not the owner"
// @Failure 404 {object} dto.APIResponse "File not found"
// @Router /admin/media/{id} [delete]
func (c *UploadController) Delete(ctx *gin.Context) {
	educatorID, _ := middleware.GetEducatorID(ctx)

	if err := c.mediaService.Delete(ctx.Request.Context(), ctx.Param("id"), educatorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessMessage("File deleted"))
}

// ListByPractice handles the media listing of a practice
// @Summary List media of a practice
// @Description Returns the files attached to a practice, newest first
// @Tags media
// @Produce json
// @Param practiceId path string true "Practice id"
// @Success 200 {object} dto.APIResponse{data=[]models.Media} "Media"
// @Router /media/practice/{practiceId} [get]
func (c *UploadController) ListByPractice(ctx *gin.Context) {
	media, err := c.mediaService.ListByPractice(ctx.Request.Context(), ctx.Param("practiceId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(media))
}
