package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"salary-prediction-api/internal/metrics"
)

// Metrics records request counts and latencies by matched route.
func Metrics() gin.HandlerFunc {
	metrics.Init()
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
