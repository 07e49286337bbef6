package handlers

import (
	"salary-prediction-api/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	predictionSvc *services.PredictionService
}

func New(predictionSvc *services.PredictionService) *Handler {
	return &Handler{
		predictionSvc: predictionSvc,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	// Probes
	r.GET("/", h.Home)
	r.GET("/health", h.Health)

	// Predictions
	r.POST("/predict", h.Predict)
}
