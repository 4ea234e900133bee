package metrics

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware records request latency per route template.
// Health and scrape endpoints are skipped.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "/metrics" || strings.HasPrefix(route, "/health/") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(route, c.Request.Method, statusClass(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
