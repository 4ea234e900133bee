package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82/webhook"

	inbound "ispbilling/internal/webhook"
	"ispbilling/pkg/metrics"
)

const stripeSignatureHeader = "Stripe-Signature"

type StripeHandler struct {
	secret     string
	dispatcher *inbound.Dispatcher
}

func NewStripeHandler(secret string, dispatcher *inbound.Dispatcher) *StripeHandler {
	return &StripeHandler{secret: secret, dispatcher: dispatcher}
}

func (h *StripeHandler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	evt, err := webhook.ConstructEventWithOptions(body, c.GetHeader(stripeSignatureHeader), h.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		metrics.WebhookSignatureFailures.WithLabelValues("stripe").Inc()
		slog.WarnContext(c.Request.Context(), "Stripe webhook rejected", slog.Any("error", err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid signature"})
		return
	}

	event, err := inbound.FromStripeEvent(evt)
	if err != nil {
		writeProviderError(c, err)
		return
	}

	report := h.dispatcher.Dispatch(c.Request.Context(), []inbound.Event{event})
	if report.HasRetryableFailure() {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true, "result": report.Outcomes[0].Result})
}
