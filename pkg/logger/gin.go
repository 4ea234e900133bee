package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"ispbilling/pkg/correlation"

	"github.com/gin-gonic/gin"
)

const maxLoggedBody = 4 * 1024

// CorrelationMiddleware takes X-Correlation-ID from the request (or generates
// one), stores it in the request context and echoes it in the response.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(correlation.HeaderName)
		if id == "" {
			id = correlation.NewID()
		}

		c.Request = c.Request.WithContext(correlation.WithID(c.Request.Context(), id))
		c.Header(correlation.HeaderName, id)

		c.Next()
	}
}

// RequestLogger logs one line per request. Bodies are only attached for
// responses with status >= 400, truncated to 4KB.
func RequestLogger(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("query", c.Request.URL.RawQuery),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		}
		if c.Writer.Status() >= 400 {
			attrs = append(attrs, bodyAttr(body))
		}

		l.InfoContext(c.Request.Context(), "HTTP request", attrs...)
	}
}

func bodyAttr(b []byte) slog.Attr {
	b = bytes.TrimSpace(b)
	if len(b) > maxLoggedBody {
		b = b[:maxLoggedBody]
	}
	if len(b) > 0 && json.Valid(b) {
		return slog.Any("request_body", json.RawMessage(b))
	}
	return slog.String("request_body", string(b))
}
