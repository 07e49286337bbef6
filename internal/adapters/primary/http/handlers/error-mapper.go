package handlers

import (
	"errors"
	"net/http"
	"strings"

	"salary-prediction-api/internal/adapters/primary/http/dto"
	"salary-prediction-api/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Service unavailable errors
	case errors.Is(err, domain.ErrModelNotLoaded):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Detail: "Model not loaded. Please check server logs.",
			Error:  err.Error(),
		})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrNegativeYears):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Detail: err.Error(),
			Fields: []dto.FieldError{{Field: "years", Message: "must be greater than or equal to 0"}},
		})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Detail: "internal server error",
			Error:  err.Error(),
		})
	}
}

// mapBindError reports request bodies that fail to decode or validate with
// 422 and per-field detail.
func mapBindError(c *gin.Context, err error) {
	resp := dto.ErrorResponse{Detail: "invalid request body", Error: err.Error()}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Fields = append(resp.Fields, dto.FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: "failed on the '" + fe.Tag() + "' rule",
			})
		}
	}

	c.JSON(http.StatusUnprocessableEntity, resp)
}
