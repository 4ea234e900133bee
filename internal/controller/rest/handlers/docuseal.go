package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ispbilling/internal/domain/contract"
	"ispbilling/internal/domain/webhookevent"
	"ispbilling/internal/webhook"
	"ispbilling/pkg/metrics"
)

const docuSealSecretHeader = "X-Docuseal-Secret"

type SubmissionHandler interface {
	HandleSubmission(ctx context.Context, event contract.SubmissionEvent) (contract.Outcome, error)
}

type DocuSealHandler struct {
	secret   string
	service  SubmissionHandler
	recorder webhook.EventRecorder
}

// NewDocuSealHandler creates the handler. recorder may be nil.
func NewDocuSealHandler(secret string, service SubmissionHandler, recorder webhook.EventRecorder) *DocuSealHandler {
	return &DocuSealHandler{secret: secret, service: service, recorder: recorder}
}

type docuSealPayload struct {
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	Data      struct {
		ID       int64  `json:"id"`
		Status   string `json:"status"`
		Template struct {
			ID int64 `json:"id"`
		} `json:"template"`
	} `json:"data"`
}

func (h *DocuSealHandler) Webhook(c *gin.Context) {
	ctx := c.Request.Context()

	got := c.GetHeader(docuSealSecretHeader)
	if h.secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
		metrics.WebhookSignatureFailures.WithLabelValues("docuseal").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Invalid secret"})
		return
	}

	var payload docuSealPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid payload"})
		return
	}
	if payload.Data.Template.ID == 0 || payload.Data.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Missing template id or status"})
		return
	}

	templateID := fmt.Sprint(payload.Data.Template.ID)
	outcome, err := h.service.HandleSubmission(ctx, contract.SubmissionEvent{
		EventType:  payload.EventType,
		Status:     payload.Data.Status,
		TemplateID: templateID,
	})
	switch {
	case errors.Is(err, contract.ErrContractNotFound):
		slog.WarnContext(ctx, "DocuSeal submission for unknown template", "template_id", templateID)
		outcome = contract.OutcomeIgnored
	case err != nil:
		slog.ErrorContext(ctx, "DocuSeal webhook failed", "template_id", templateID, slog.Any("error", err))
		h.record(ctx, payload, webhook.ResultFailed, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}

	result := webhook.ResultIgnored
	if outcome == contract.OutcomeSuccess {
		result = webhook.ResultApplied
	}
	h.record(ctx, payload, result, nil)

	c.JSON(http.StatusOK, gin.H{"status": string(outcome)})
}

func (h *DocuSealHandler) record(ctx context.Context, p docuSealPayload, result webhook.Result, cause error) {
	metrics.WebhookEventsTotal.WithLabelValues("docuseal", "submission", string(result)).Inc()
	if h.recorder == nil {
		return
	}

	entry := webhookevent.NewWebhookEvent{
		Provider:        "docuseal",
		ProviderEventID: fmt.Sprintf("%s:%d:%d", p.EventType, p.Data.ID, p.Timestamp.Unix()),
		ResourceType:    "submission",
		Action:          p.EventType,
		ResourceID:      fmt.Sprint(p.Data.ID),
		Result:          string(result),
		ReceivedAt:      time.Now().UTC(),
	}
	if cause != nil {
		entry.Error = cause.Error()
	}
	if err := h.recorder.RecordEvent(ctx, entry); err != nil {
		slog.WarnContext(ctx, "Failed to record DocuSeal event", slog.Any("error", err))
	}
}
