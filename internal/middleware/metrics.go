package middleware

import (
	"time"

	"joonbee_backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records one counter increment and one latency sample per
// finished request, labeled by the registered route pattern.
func MetricsMiddleware(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
