package message

import (
	"context"
	"fmt"
	"log/slog"

	"ispbilling/internal/messaging"
	"ispbilling/internal/webhook"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, events []webhook.Event) webhook.Report
}

// PaymentMessageController handles GoCardless event entries queued by the
// ingest gateway, one entry per message.
type PaymentMessageController struct {
	dispatcher Dispatcher
}

func NewPaymentMessageController(d Dispatcher) *PaymentMessageController {
	return &PaymentMessageController{dispatcher: d}
}

// HandleMessage returns an error only for a failed entry, so not_found and
// ignored outcomes are committed.
func (c *PaymentMessageController) HandleMessage(ctx context.Context, key, value []byte) error {
	var event webhook.Event
	env, err := messaging.DecodeEnvelope(value, &event)
	if err != nil {
		slog.ErrorContext(ctx, "Undecodable payment message", "key", string(key), slog.Any("error", err))
		return messaging.Permanent(err)
	}

	slog.DebugContext(ctx, "Processing payment message", "event_id", env.EventID, "key", env.Key, "type", env.Type)

	report := c.dispatcher.Dispatch(ctx, []webhook.Event{event})
	if err := report.FirstError(); err != nil {
		return fmt.Errorf("event %s: %w", event.ID, err)
	}
	return nil
}
