package handlers

import (
	"net/http"

	"salary-prediction-api/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Home is the liveness probe. Model state is reported in the body only.
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToStatusResponse(h.predictionSvc.Status()))
}

func (h *Handler) Health(c *gin.Context) {
	report, err := h.predictionSvc.Health(c.Request.Context())
	if err != nil {
		log.WithError(err).Warn("health check failed")
		resp := dto.ToHealthResponse(report)
		resp.Detail = "Model not loaded. Please check server logs."
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, dto.ToHealthResponse(report))
}
