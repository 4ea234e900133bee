package webhook

import (
	"context"
	"fmt"
	"log/slog"

	"ispbilling/internal/messaging"
)

// Processor handles the entries of one verified delivery.
type Processor interface {
	ProcessEvents(ctx context.Context, events []Event) Report
}

// SyncProcessor dispatches entries in-process before the delivery is answered.
type SyncProcessor struct {
	dispatcher *Dispatcher
}

func NewSyncProcessor(dispatcher *Dispatcher) *SyncProcessor {
	return &SyncProcessor{dispatcher: dispatcher}
}

func (p *SyncProcessor) ProcessEvents(ctx context.Context, events []Event) Report {
	return p.dispatcher.Dispatch(ctx, events)
}

// AsyncProcessor publishes one envelope per entry, keyed by resource id so
// that events of the same payment stay on one partition.
type AsyncProcessor struct {
	provider  string
	publisher messaging.Publisher
}

func NewAsyncProcessor(provider string, publisher messaging.Publisher) *AsyncProcessor {
	return &AsyncProcessor{provider: provider, publisher: publisher}
}

func (p *AsyncProcessor) ProcessEvents(ctx context.Context, events []Event) Report {
	var report Report
	for _, e := range events {
		o := Outcome{
			EventID:      e.ID,
			ResourceType: e.ResourceType,
			Action:       e.Action,
			ResourceID:   e.ResourceID(),
			Result:       ResultQueued,
		}
		if err := p.publish(ctx, e); err != nil {
			slog.ErrorContext(ctx, "Failed to queue webhook event", "event_id", e.ID, slog.Any("error", err))
			o.Result = ResultFailed
			o.Err = err
		}
		report.add(o)
	}
	return report
}

func (p *AsyncProcessor) publish(ctx context.Context, e Event) error {
	key := e.ResourceID()
	if key == "" {
		key = e.ID
	}

	env, err := messaging.NewEnvelope(e.ID, key, MessageType(p.provider, e), e)
	if err != nil {
		return fmt.Errorf("build envelope: %w", err)
	}
	if err := p.publisher.Publish(ctx, env); err != nil {
		return fmt.Errorf("publish event %s: %w", e.ID, err)
	}
	return nil
}

// MessageType is "<provider>.<resource_type>.<action>".
func MessageType(provider string, e Event) string {
	return provider + "." + e.Type()
}
