package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ispbilling/internal/webhook"
	"ispbilling/pkg/metrics"
)

type GoCardlessHandler struct {
	secret    string
	processor webhook.Processor
}

func NewGoCardlessHandler(secret string, processor webhook.Processor) *GoCardlessHandler {
	return &GoCardlessHandler{secret: secret, processor: processor}
}

// Webhook verifies the delivery and processes its entries. It answers 500
// only when an entry failed in a way a redelivery could fix.
func (h *GoCardlessHandler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	if err := webhook.VerifySignature(h.secret, body, c.GetHeader(webhook.SignatureHeader)); err != nil {
		metrics.WebhookSignatureFailures.WithLabelValues("gocardless").Inc()
		slog.WarnContext(c.Request.Context(), "GoCardless webhook rejected", slog.Any("error", err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid signature"})
		return
	}

	events, err := webhook.ParseEnvelope(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	report := h.processor.ProcessEvents(c.Request.Context(), events)
	if report.HasRetryableFailure() {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Webhook received", "results": report.Counts()})
}

func writeProviderError(c *gin.Context, err error) {
	if errors.Is(err, webhook.ErrInvalidPayload) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Error"})
}
