package middleware

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"salary-prediction-api/internal/adapters/primary/http/dto"
)

// Recovery turns a panic in any later handler into a 500 carrying the panic
// value and stack trace.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		trace := string(debug.Stack())

		log.WithFields(log.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(ctxRequestID),
			"panic":      fmt.Sprint(recovered),
			"stack":      trace,
		}).Error("panic recovered")

		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Detail: "internal server error",
			Error:  fmt.Sprint(recovered),
			Trace:  trace,
		})
	})
}
