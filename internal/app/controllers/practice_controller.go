package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/app/services"
	"github.com/harutok/practiceshare/internal/middleware"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	"github.com/harutok/practiceshare/internal/pkg/helpers"
)

// Published practice responses may be cached by shared caches for five
// minutes and served stale for ten while revalidating.
const publicCacheControl = "public, max-age=300, s-maxage=300, stale-while-revalidate=600"

// PracticeController handles teaching practice endpoints
type PracticeController struct {
	practiceService services.PracticeService
}

// NewPracticeController creates a new PracticeController
func NewPracticeController(practiceService services.PracticeService) *PracticeController {
	return &PracticeController{
		practiceService: practiceService,
	}
}

// parseListFilter builds the whitelisted filter from query parameters. The
// public listing always pins isPublished to true.
func parseListFilter(ctx *gin.Context) (*dto.PracticeFilter, error) {
	published := true
	filter := &dto.PracticeFilter{
		IsPublished:   &published,
		Subject:       ctx.Query("subject"),
		GradeLevel:    ctx.Query("gradeLevel"),
		LearningLevel: ctx.Query("learningLevel"),
	}

	if raw := ctx.Query("specialNeeds"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, apperrors.NewValidationError("specialNeeds must be a boolean")
		}
		filter.SpecialNeeds = &value
	}

	return filter, nil
}

// List handles the public practice listing
// @Summary List published practices
// @Description Returns published practices, newest first, with optional equality filters
// @Tags practices
// @Produce json
// @Param subject query string false "Filter by subject"
// @Param gradeLevel query string false "Filter by grade level"
// @Param learningLevel query string false "Filter by learning level (basic, standard, advanced)"
// @Param specialNeeds query bool false "Filter by special needs support"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.APIResponse{data=[]dto.PracticeListItem,pagination=dto.Pagination} "Practices"
// @Failure 400 {object} dto.APIResponse "Invalid parameters"
// @Router /practices [get]
func (c *PracticeController) List(ctx *gin.Context) {
	page, limit, err := helpers.ParsePagination(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filter, err := parseListFilter(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items, total, err := c.practiceService.List(ctx.Request.Context(), filter, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Cache-Control", publicCacheControl)
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(items, helpers.NewPagination(page, limit, total)))
}

// Get handles the practice detail endpoint
// @Summary Get a practice
// @Description Returns one practice with rating aggregate, recent comments and media. Drafts are visible to their owner only.
// @Tags practices
// @Produce json
// @Param id path string true "Practice id"
// @Success 200 {object} dto.APIResponse{data=dto.PracticeDetailResponse} "Practice"
// @Failure 404 {object} dto.APIResponse "Practice not found"
// @Router /practices/{id} [get]
func (c *PracticeController) Get(ctx *gin.Context) {
	viewerID, _ := middleware.GetEducatorID(ctx)

	detail, err := c.practiceService.GetDetail(ctx.Request.Context(), ctx.Param("id"), viewerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Drafts are owner-only reads and must never be cached by shared caches.
	if detail.IsPublished {
		ctx.Header("Cache-Control", publicCacheControl)
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail))
}

// Create handles practice creation
// @Summary Create a practice
// @Description Stores a new practice owned by the authenticated educator
// @Tags practices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePracticeRequest true "Practice data"
// @Success 201 {object} dto.APIResponse{data=models.Practice} "Created practice"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Router /practices [post]
func (c *PracticeController) Create(ctx *gin.Context) {
	educatorID, _ := middleware.GetEducatorID(ctx)

	var req dto.CreatePracticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	practice, err := c.practiceService.Create(ctx.Request.Context(), educatorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(practice))
}

// Update handles partial practice updates
// @Summary Update a practice
// @Description Applies a partial update; only the owner may edit
// @Tags practices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Practice id"
// @Param request body dto.UpdatePracticeRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Practice} "Updated practice"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Not the owner"
// @Failure 404 {object} dto.APIResponse "Practice not found"
// @Router /practices/{id} [put]
func (c *PracticeController) Update(ctx *gin.Context) {
	educatorID, _ := middleware.GetEducatorID(ctx)

	var req dto.UpdatePracticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	practice, err := c.practiceService.Update(ctx.Request.Context(), ctx.Param("id"), educatorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(practice))
}

// Delete handles practice deletion
// @Summary Delete a practice
// @Description Removes a practice and its comments, ratings, contacts and media
// @Tags practices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Practice id"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Not the owner"
// @Failure 404 {object} dto.APIResponse "Practice not found"
// @Router /practices/{id} [delete]
func (c *PracticeController) Delete(ctx *gin.Context) {
	educatorID, _ := middleware.GetEducatorID(ctx)

	if err := c.practiceService.Delete(ctx.Request.Context(), ctx.Param("id"), educatorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessMessage("Practice deleted"))
}
