package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"ispbilling/internal/messaging"
	"ispbilling/pkg/correlation"
)

const headerMessageType = "type"

// Publisher implements messaging.Publisher. Messages are hashed by key, so
// envelopes with the same key keep their order.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{writer: newWriter(brokers, topic)}
}

func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	msg := kafka.Message{
		Key:     []byte(env.Key),
		Value:   value,
		Headers: []kafka.Header{{Key: headerMessageType, Value: []byte(env.Type)}},
	}
	if h, ok := correlation.KafkaHeader(ctx); ok {
		msg.Headers = append(msg.Headers, h)
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish message",
			"topic", p.writer.Topic, "key", env.Key, slog.Any("error", err))
		return err
	}

	slog.DebugContext(ctx, "Message published",
		"topic", p.writer.Topic, "key", env.Key, "event_id", env.EventID, "type", env.Type)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
