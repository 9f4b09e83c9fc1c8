package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/app/services"
	"github.com/harutok/practiceshare/internal/middleware"
	"github.com/harutok/practiceshare/internal/pkg/helpers"
)

// CommentController handles public comment endpoints
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// Create handles comment submission
// @Summary Post a comment
// @Description Stores an anonymous comment on a published practice
// @Tags comments
// @Accept json
// @Produce json
// @Param request body dto.CreateCommentRequest true "Comment data"
// @Success 201 {object} dto.APIResponse{data=models.Comment} "Created comment"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 403 {object} dto.APIResponse "Practice not published"
// @Failure 404 {object} dto.APIResponse "Practice not found"
// @Router /comments [post]
func (c *CommentController) Create(ctx *gin.Context) {
	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	comment, err := c.commentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment))
}

// ListByPractice handles the comment listing of a practice
// @Summary List comments of a practice
// @Description Returns a page of comments, newest first
// @Tags comments
// @Produce json
// @Param practiceId path string true "Practice id"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.Comment,pagination=dto.Pagination} "Comments"
// @Failure 400 {object} dto.APIResponse "Invalid parameters"
// @Router /comments/practice/{practiceId} [get]
func (c *CommentController) ListByPractice(ctx *gin.Context) {
	page, limit, err := helpers.ParsePagination(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	comments, total, err := c.commentService.ListByPractice(ctx.Request.Context(), ctx.Param("practiceId"), page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(comments, helpers.NewPagination(page, limit, total)))
}

// Delete handles comment deletion by the practice owner
// @Summary Delete a comment
// @Description Removes a comment; only the owner of the parent practice may do so
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment id"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Not the owner"
// @Failure 404 {object} dto.APIResponse "Comment not found"
// @Router /comments/{id} [delete]
func (c *CommentController) Delete(ctx *gin.Context) {
	educatorID, _ := middleware.GetEducatorID(ctx)

	if err := c.commentService.Delete(ctx.Request.Context(), ctx.Param("id"), educatorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessMessage("Comment deleted"))
}
