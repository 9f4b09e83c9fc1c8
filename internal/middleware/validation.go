package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/harutok/practiceshare/internal/app/models/dto"
)

// HandleBindingError turns a gin binding failure into a 400 envelope with a
// readable field list.
func HandleBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, describeFieldError(fe))
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Validation failed: "+strings.Join(fields, "; ")))
		return
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
