package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"ispbilling/internal/domain/webhookevent"
	"ispbilling/internal/messaging"
	"ispbilling/pkg/metrics"
)

type Handler interface {
	Handle(ctx context.Context, event Event) (Result, error)
}

// EventRecorder is the write side of webhookevent.EventSink.
type EventRecorder interface {
	RecordEvent(ctx context.Context, event webhookevent.NewWebhookEvent) error
}

type HandlerFunc func(ctx context.Context, event Event) (Result, error)

func (f HandlerFunc) Handle(ctx context.Context, event Event) (Result, error) {
	return f(ctx, event)
}

type route struct {
	resourceType string
	action       string
}

// Dispatcher routes event entries by (resource_type, action). Each entry is
// handled on its own: a failing or panicking handler marks only that entry
// failed.
type Dispatcher struct {
	provider string
	exact    map[route]Handler
	wildcard map[string]Handler
	sink     EventRecorder
	now      func() time.Time
}

// NewDispatcher creates a dispatcher for one provider. sink may be nil.
func NewDispatcher(provider string, sink EventRecorder) *Dispatcher {
	return &Dispatcher{
		provider: provider,
		exact:    make(map[route]Handler),
		wildcard: make(map[string]Handler),
		sink:     sink,
		now:      time.Now,
	}
}

func (d *Dispatcher) Provider() string {
	return d.provider
}

func (d *Dispatcher) Register(resourceType, action string, h Handler) {
	d.exact[route{resourceType: resourceType, action: action}] = h
}

// RegisterResource handles every action of resourceType not registered exactly.
func (d *Dispatcher) RegisterResource(resourceType string, h Handler) {
	d.wildcard[resourceType] = h
}

func (d *Dispatcher) Dispatch(ctx context.Context, events []Event) Report {
	var report Report
	for _, e := range events {
		o := d.dispatchOne(ctx, e)
		d.record(ctx, e, o)
		report.add(o)
	}
	return report
}

func (d *Dispatcher) handlerFor(e Event) (Handler, bool) {
	if h, ok := d.exact[route{resourceType: e.ResourceType, action: e.Action}]; ok {
		return h, true
	}
	h, ok := d.wildcard[e.ResourceType]
	return h, ok
}

func (d *Dispatcher) dispatchOne(ctx context.Context, e Event) (o Outcome) {
	o = Outcome{
		EventID:      e.ID,
		ResourceType: e.ResourceType,
		Action:       e.Action,
		ResourceID:   e.ResourceID(),
	}

	h, ok := d.handlerFor(e)
	if !ok {
		slog.InfoContext(ctx, "Unhandled webhook event ignored",
			"provider", d.provider, "event_id", e.ID, "resource_type", e.ResourceType, "action", e.Action)
		o.Result = ResultIgnored
		return o
	}

	defer func() {
		if rec := recover(); rec != nil {
			slog.ErrorContext(ctx, "Webhook handler panic recovered",
				"provider", d.provider, "event_id", e.ID, "panic", rec, "stack", string(debug.Stack()))
			o.Result = ResultFailed
			o.Err = messaging.Permanent(fmt.Errorf("handler panic: %v", rec))
		}
	}()

	result, err := h.Handle(ctx, e)
	if err != nil {
		slog.ErrorContext(ctx, "Webhook event failed",
			"provider", d.provider, "event_id", e.ID, "type", e.Type(), slog.Any("error", err))
		o.Result = ResultFailed
		o.Err = err
		return o
	}

	o.Result = result
	return o
}

func (d *Dispatcher) record(ctx context.Context, e Event, o Outcome) {
	metrics.WebhookEventsTotal.WithLabelValues(d.provider, e.ResourceType, string(o.Result)).Inc()
	if o.Result == ResultSettled {
		metrics.SettlementsCreated.WithLabelValues(d.provider).Inc()
	}

	if d.sink == nil || e.ID == "" {
		return
	}

	entry := webhookevent.NewWebhookEvent{
		Provider:        d.provider,
		ProviderEventID: e.ID,
		ResourceType:    e.ResourceType,
		Action:          e.Action,
		ResourceID:      o.ResourceID,
		Result:          string(o.Result),
		ReceivedAt:      d.now().UTC(),
	}
	if o.Err != nil {
		entry.Error = o.Err.Error()
	}

	if err := d.sink.RecordEvent(ctx, entry); err != nil {
		slog.WarnContext(ctx, "Failed to record webhook event",
			"provider", d.provider, "event_id", e.ID, slog.Any("error", err))
	}
}
