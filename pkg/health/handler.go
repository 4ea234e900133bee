package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func LivenessHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": StatusUp})
	}
}

// ReadinessHandler answers 503 when any registered check is down.
func ReadinessHandler(registry *Registry, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		report := registry.CheckAll(ctx)

		status := http.StatusOK
		if report.Status == StatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, report)
	}
}
