package handlers

import (
	"errors"
	"net/http"

	"salary-prediction-api/internal/adapters/primary/http/dto"
	"salary-prediction-api/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Info("predict request rejected")
		mapBindError(c, err)
		return
	}

	prediction, err := h.predictionSvc.Predict(c.Request.Context(), *req.Years)
	if err != nil {
		entry := log.WithError(err).WithField("years", *req.Years)
		switch {
		case errors.Is(err, domain.ErrNegativeYears):
			entry.Info("predict request rejected")
		case errors.Is(err, domain.ErrModelNotLoaded):
			entry.Warn("predict requested without a model")
		default:
			entry.Error("predict failed")
		}
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictResponse(prediction))
}
