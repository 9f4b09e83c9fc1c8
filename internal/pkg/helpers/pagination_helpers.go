package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultPage  = 1 // pages are 1-based
)

// ParsePagination extracts the page and limit query parameters.
// Absent parameters fall back to the defaults; parameters that are present
// but invalid fail with a validation error instead of being clamped.
func ParsePagination(c *gin.Context) (page, limit int, err error) {
	page = DefaultPage
	limit = DefaultLimit

	if pageStr := c.Query("page"); pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return 0, 0, apperrors.NewValidationError("page must be a number greater than or equal to 1")
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > MaxLimit {
			return 0, 0, apperrors.NewValidationError("limit must be a number between 1 and 100")
		}
	}

	return page, limit, nil
}

// Offset converts a 1-based page number to a SQL offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// NewPagination creates the pagination metadata for a response.
// total must reflect the same filter predicate as the returned items.
func NewPagination(page, limit, total int) dto.Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return dto.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
