package handlers

import (
	"net/http"

	"salary-prediction-api/internal/adapters/primary/http/dto"
	"salary-prediction-api/internal/adapters/primary/http/middleware"
	"salary-prediction-api/internal/metrics"

	"github.com/gin-gonic/gin"
)

// metricsHandler is a variable so tests can exercise the /metrics chain.
var metricsHandler = metrics.Handler

// NewRouter builds the engine with the full middleware chain. Routes are
// registered only after every Use call so each one carries the whole chain.
func NewRouter(h *Handler, metricsEnabled bool) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestID(), middleware.Logging())
	if metricsEnabled {
		router.Use(middleware.Metrics())
	}
	router.Use(middleware.Recovery())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Not Found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Detail: "Method Not Allowed"})
	})

	if metricsEnabled {
		router.GET("/metrics", gin.WrapH(metricsHandler()))
	}
	h.RegisterRoutes(router)
	return router
}
