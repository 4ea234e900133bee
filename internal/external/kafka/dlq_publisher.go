package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"ispbilling/pkg/correlation"
)

const (
	headerError    = "error"
	headerFailedAt = "failed_at"
)

// DLQPublisher republishes a failed message unchanged, with the failure in
// its headers.
type DLQPublisher struct {
	writer *kafka.Writer
	now    func() time.Time
}

func NewDLQPublisher(brokers []string, dlqTopic string) *DLQPublisher {
	return &DLQPublisher{writer: newWriter(brokers, dlqTopic), now: time.Now}
}

func (p *DLQPublisher) PublishToDLQ(ctx context.Context, key, value []byte, err error) error {
	msg := kafka.Message{
		Key:     key,
		Value:   value,
		Headers: dlqHeaders(ctx, err, p.now()),
	}

	if writeErr := p.writer.WriteMessages(ctx, msg); writeErr != nil {
		slog.ErrorContext(ctx, "Failed to publish to DLQ",
			"topic", p.writer.Topic, "key", string(key), slog.Any("error", writeErr), "original_error", err.Error())
		return writeErr
	}

	slog.WarnContext(ctx, "Message sent to DLQ", "topic", p.writer.Topic, "key", string(key), slog.Any("error", err))
	return nil
}

func dlqHeaders(ctx context.Context, err error, at time.Time) []kafka.Header {
	headers := []kafka.Header{
		{Key: headerError, Value: []byte(err.Error())},
		{Key: headerFailedAt, Value: []byte(at.UTC().Format(time.RFC3339))},
	}
	if h, ok := correlation.KafkaHeader(ctx); ok {
		headers = append(headers, h)
	}
	return headers
}

func (p *DLQPublisher) Close() error {
	return p.writer.Close()
}
