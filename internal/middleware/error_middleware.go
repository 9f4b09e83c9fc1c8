package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses with the standard
// {success:false, message} envelope.
func HandleAPIError(c *gin.Context, err error) {
	// A CustomError carries a caller-facing message; use it when present.
	message := ""
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		message = customErr.Message
	}

	respond := func(status int, fallback string) {
		if message == "" {
			message = fallback
		}
		c.JSON(status, dto.NewErrorResponse(message))
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, "Validation failed")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, "Invalid email or password")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrUnauthenticated):
		respond(http.StatusUnauthorized, "Authentication required")

	case errors.Is(err, apperrors.ErrContactDisabled):
		respond(http.StatusForbidden, "This educator is not accepting contact at the moment")

	case errors.Is(err, apperrors.ErrPracticeNotPublished):
		respond(http.StatusForbidden, "This practice is not published")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, "Permission denied")

	case errors.Is(err, apperrors.ErrPracticeNotFound):
		respond(http.StatusNotFound, "Practice not found")

	case errors.Is(err, apperrors.ErrCommentNotFound):
		respond(http.StatusNotFound, "Comment not found")

	case errors.Is(err, apperrors.ErrContactNotFound):
		respond(http.StatusNotFound, "Contact not found")

	case errors.Is(err, apperrors.ErrMediaNotFound):
		respond(http.StatusNotFound, "File not found")

	case errors.Is(err, apperrors.ErrEducatorNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, "Resource not found")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(http.StatusConflict, "Email already registered")

	case errors.Is(err, apperrors.ErrConflict):
		respond(http.StatusConflict, "Conflict")

	case errors.Is(err, apperrors.ErrPayloadTooLarge):
		respond(http.StatusRequestEntityTooLarge, "File too large")

	case errors.Is(err, apperrors.ErrUnsupportedMediaType):
		respond(http.StatusUnsupportedMediaType, "Unsupported file type")

	default:
		// Unknown errors are logged with detail and surfaced generically.
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
