package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Envelope is the Kafka message body for one webhook event entry. EventID
// is the provider's event id, so a redelivered webhook and its queued copy
// share it.
type Envelope struct {
	EventID string `json:"event_id"`
	// Key is also the Kafka message key: entries for one payment stay in order.
	Key       string          `json:"key"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEnvelope marshals payload. Without an eventID a random one is used.
func NewEnvelope(eventID, key, msgType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	if eventID == "" {
		eventID = uuid.NewString()
	}

	return Envelope{
		EventID:   eventID,
		Key:       key,
		Type:      msgType,
		Payload:   data,
		Timestamp: time.Now().UTC(),
	}, nil
}

// DecodeEnvelope parses a raw message value and then its payload into v.
func DecodeEnvelope(value []byte, v any) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		return Envelope{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if len(env.Payload) == 0 {
		return env, fmt.Errorf("envelope %s has no payload", env.EventID)
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return env, fmt.Errorf("unmarshal %s payload of %s: %w", env.Type, env.EventID, err)
	}
	return env, nil
}

type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Close() error
}

// MessageHandler returns nil to commit the message.
type MessageHandler func(ctx context.Context, key, value []byte) error

type Worker interface {
	Start(ctx context.Context, handler MessageHandler) error
	Close() error
}
