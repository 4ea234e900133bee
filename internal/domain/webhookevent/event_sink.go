package webhookevent

import (
	"context"
	"time"
)

//go:generate mockgen -source event_sink.go -destination mock_event_sink.go -package webhookevent

// EventSink is the webhook audit log. Recording the same
// (provider, provider_event_id) again overwrites the stored result and bumps
// the attempt counter.
type EventSink interface {
	RecordEvent(ctx context.Context, event NewWebhookEvent) error
	GetEvents(ctx context.Context, query EventQuery) ([]WebhookEvent, error)
}

type WebhookEvent struct {
	ID       string `json:"id"`
	Attempts int    `json:"attempts"`
	NewWebhookEvent
}

type NewWebhookEvent struct {
	Provider        string    `json:"provider"`
	ProviderEventID string    `json:"provider_event_id"`
	ResourceType    string    `json:"resource_type"`
	Action          string    `json:"action"`
	ResourceID      string    `json:"resource_id,omitempty"`
	Result          string    `json:"result"`
	Error           string    `json:"error,omitempty"`
	ReceivedAt      time.Time `json:"received_at"`
}

const (
	DefaultQueryLimit = 100
	MaxQueryLimit     = 1000
)

type EventQuery struct {
	Providers []string `json:"providers" url:"provider,omitempty" form:"provider"`
	Results   []string `json:"results" url:"result,omitempty" form:"result"`
	Limit     int      `json:"limit" url:"limit,omitempty" form:"limit"`
}

// Normalize clamps the limit into [1, MaxQueryLimit].
func (q EventQuery) Normalize() EventQuery {
	switch {
	case q.Limit <= 0:
		q.Limit = DefaultQueryLimit
	case q.Limit > MaxQueryLimit:
		q.Limit = MaxQueryLimit
	}
	return q
}
