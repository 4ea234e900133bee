package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ispbilling/internal/messaging"
	"ispbilling/internal/webhook"
)

const gcSecret = "gc_secret"

type stubProcessor struct {
	calls  int
	events []webhook.Event
	report webhook.Report
}

func (p *stubProcessor) ProcessEvents(_ context.Context, events []webhook.Event) webhook.Report {
	p.calls++
	p.events = events
	return p.report
}

func gocardlessEngine(p webhook.Processor) *gin.Engine {
	engine := gin.New()
	engine.POST("/webhooks/gocardless", NewGoCardlessHandler(gcSecret, p).Webhook)
	return engine
}

func signed(body []byte) map[string]string {
	return map[string]string{webhook.SignatureHeader: webhook.Sign(gcSecret, body)}
}

const gcBody = `{"events":[{"id":"EV1","created_at":"2026-03-01T10:00:00.000Z","resource_type":"payments","action":"paid_out","links":{"payment":"PM1"}}]}`

func TestGoCardlessHandler_Webhook(t *testing.T) {
	t.Run("processes verified delivery", func(t *testing.T) {
		p := &stubProcessor{report: webhook.Report{Outcomes: []webhook.Outcome{{EventID: "EV1", Result: webhook.ResultSettled}}}}
		body := []byte(gcBody)

		w := perform(gocardlessEngine(p), http.MethodPost, "/webhooks/gocardless", body, signed(body))

		assert.Equal(t, http.StatusOK, w.Code)
		res := decode[map[string]any](t, w)
		assert.Equal(t, "Webhook received", res["message"])
		assert.Equal(t, map[string]any{"settled": float64(1)}, res["results"])
		require.Len(t, p.events, 1)
		assert.Equal(t, "PM1", p.events[0].ResourceID())
	})

	t.Run("rejects bad signature without processing", func(t *testing.T) {
		p := &stubProcessor{}
		body := []byte(gcBody)
		headers := map[string]string{webhook.SignatureHeader: webhook.Sign("wrong", body)}

		w := perform(gocardlessEngine(p), http.MethodPost, "/webhooks/gocardless", body, headers)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid signature", decode[map[string]any](t, w)["message"])
		assert.Zero(t, p.calls)
	})

	t.Run("rejects missing signature", func(t *testing.T) {
		p := &stubProcessor{}

		w := perform(gocardlessEngine(p), http.MethodPost, "/webhooks/gocardless", []byte(gcBody), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, p.calls)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		p := &stubProcessor{}
		body := []byte(`{"events":[`)

		w := perform(gocardlessEngine(p), http.MethodPost, "/webhooks/gocardless", body, signed(body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid payload", decode[map[string]any](t, w)["message"])
		assert.Zero(t, p.calls)
	})

	t.Run("retryable failure answers 500", func(t *testing.T) {
		p := &stubProcessor{report: webhook.Report{Outcomes: []webhook.Outcome{
			{EventID: "EV1", Result: webhook.ResultSettled},
			{EventID: "EV2", Result: webhook.ResultFailed, Err: errors.New("db down")},
		}}}
		body := []byte(gcBody)

		w := perform(gocardlessEngine(p), http.MethodPost, "/webhooks/gocardless", body, signed(body))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Error", decode[map[string]any](t, w)["message"])
	})

	t.Run("permanent failure is acknowledged", func(t *testing.T) {
		p := &stubProcessor{report: webhook.Report{Outcomes: []webhook.Outcome{
			{EventID: "EV1", Result: webhook.ResultFailed, Err: messaging.Permanent(errors.New("handler panic"))},
		}}}
		body := []byte(gcBody)

		w := perform(gocardlessEngine(p), http.MethodPost, "/webhooks/gocardless", body, signed(body))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
