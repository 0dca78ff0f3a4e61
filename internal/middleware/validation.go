package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/campusrate/campusrate/internal/app/models/dto"
)

var validate = validator.New()

// ValidatedBodyKey is the context key holding the bound request body.
const ValidatedBodyKey = "validatedBody"

// ValidateRequest binds the request body to the provided model and
// validates it, aborting with a structured 400 on failure. The
// validated object is stored under ValidatedBodyKey.
func ValidateRequest(newObj func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := newObj()
		if err := c.ShouldBindJSON(obj); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
			errorDetail = errorDetail.WithDetails(err.Error())
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		if err := validate.Struct(obj); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
			if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
				errorDetail = errorDetail.WithField(verrs[0].Field())
				errorDetail = errorDetail.WithDetails(formatValidationError(verrs[0]))
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ValidatedBodyKey, obj)
		c.Next()
	}
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
