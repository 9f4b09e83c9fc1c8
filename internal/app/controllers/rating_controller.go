package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/app/services"
	"github.com/harutok/practiceshare/internal/middleware"
)

// RatingController handles anonymous rating endpoints
type RatingController struct {
	ratingService services.RatingService
}

// NewRatingController creates a new RatingController
func NewRatingController(ratingService services.RatingService) *RatingController {
	return &RatingController{
		ratingService: ratingService,
	}
}

// Create handles rating submission
// @Summary Rate a practice
// @Description Records a 1..5 rating; a repeat submission by the same session (or IP) replaces the earlier score
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body dto.CreateRatingRequest true "Rating data"
// @Success 201 {object} dto.APIResponse{data=models.Rating} "Stored rating"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 403 {object} dto.APIResponse "Practice not published"
// @Failure 404 {object} dto.APIResponse "Practice not found"
// @Router /ratings [post]
func (c *RatingController) Create(ctx *gin.Context) {
	var req dto.CreateRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	rating, err := c.ratingService.Rate(ctx.Request.Context(), &req, ctx.ClientIP())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(rating))
}

// Stats handles the rating aggregate of a practice
// @Summary Get rating statistics
// @Description Returns average (one decimal), total and the 1..5 distribution
// @Tags ratings
// @Produce json
// @Param practiceId path string true "Practice id"
// @Success 200 {object} dto.APIResponse{data=models.RatingStats} "Statistics"
// @Router /ratings/practice/{practiceId}/stats [get]
func (c *RatingController) Stats(ctx *gin.Context) {
	stats, err := c.ratingService.Stats(ctx.Request.Context(), ctx.Param("practiceId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// UserRating handles reading the caller's own rating
// @Summary Get own rating
// @Description Returns the caller's rating for a practice, null when absent
// @Tags ratings
// @Produce json
// @Param practiceId path string true "Practice id"
// @Param sessionId query string false "Session id; falls back to client IP"
// @Success 200 {object} dto.APIResponse{data=dto.UserRatingResponse} "Rating"
// @Router /ratings/practice/{practiceId}/user [get]
func (c *RatingController) UserRating(ctx *gin.Context) {
	value, err := c.ratingService.UserRating(
		ctx.Request.Context(), ctx.Param("practiceId"), ctx.Query("sessionId"), ctx.ClientIP(),
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UserRatingResponse{Rating: value}))
}
