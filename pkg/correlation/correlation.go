// Package correlation carries a request correlation ID through contexts,
// HTTP headers and Kafka message headers.
package correlation

import (
	"context"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// HeaderName is used for both HTTP and Kafka headers.
const HeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext returns an empty string when no ID is stored.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func NewID() string {
	return uuid.New().String()
}

// KafkaHeader returns the header to attach to an outgoing message, or false
// when ctx carries no ID.
func KafkaHeader(ctx context.Context) (kafka.Header, bool) {
	id := FromContext(ctx)
	if id == "" {
		return kafka.Header{}, false
	}
	return kafka.Header{Key: HeaderName, Value: []byte(id)}, true
}

// FromKafkaHeaders restores the ID of a consumed message into ctx, generating
// a fresh one when the producer did not set it.
func FromKafkaHeaders(ctx context.Context, headers []kafka.Header) context.Context {
	for _, h := range headers {
		if h.Key == HeaderName && len(h.Value) > 0 {
			return WithID(ctx, string(h.Value))
		}
	}
	return WithID(ctx, NewID())
}
