package kafka

import (
	"context"
	"errors"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"ispbilling/internal/messaging"
	"ispbilling/pkg/correlation"
)

// Consumer implements messaging.Worker on a consumer-group reader. A message
// is committed only after the handler returns nil.
type Consumer struct {
	reader *kafka.Reader
	log    *slog.Logger
}

func NewConsumer(brokers []string, topic, groupID string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	return &Consumer{
		reader: reader,
		log:    slog.With("topic", topic, "group_id", groupID),
	}
}

// Start blocks until ctx is cancelled or fetching fails.
func (c *Consumer) Start(ctx context.Context, handler messaging.MessageHandler) error {
	c.log.InfoContext(ctx, "Consumer started")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				c.log.InfoContext(ctx, "Consumer stopped")
				return nil
			}
			c.log.ErrorContext(ctx, "Failed to fetch message", slog.Any("error", err))
			return err
		}

		msgCtx := correlation.FromKafkaHeaders(ctx, msg.Headers)
		c.log.DebugContext(msgCtx, "Message received",
			"partition", msg.Partition, "offset", msg.Offset, "key", string(msg.Key))

		if err := handler(msgCtx, msg.Key, msg.Value); err != nil {
			// left uncommitted, redelivered after restart or rebalance
			c.log.ErrorContext(msgCtx, "Handler error, message not committed",
				"partition", msg.Partition, "offset", msg.Offset, "key", string(msg.Key), slog.Any("error", err))
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.log.ErrorContext(msgCtx, "Failed to commit message",
				"partition", msg.Partition, "offset", msg.Offset, slog.Any("error", err))
			return err
		}
	}
}

func (c *Consumer) Close() error {
	c.log.Info("Closing consumer")
	return c.reader.Close()
}
