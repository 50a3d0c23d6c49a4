package middleware

import (
	"time"

	"booking-intake/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware observes latency per matched route template.
func MetricsMiddleware(m *metrics.Intake) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
