//go:build integration
// +build integration

package testinfra

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
)

type KafkaContainer struct {
	Container     *kafka.KafkaContainer
	Brokers       []string
	PaymentsTopic string
	DLQTopic      string
	PaymentsGroup string
}

func NewKafka(ctx context.Context) (*KafkaContainer, error) {
	container, err := kafka.Run(ctx,
		"confluentinc/confluent-local:7.5.0",
		kafka.WithClusterID("test-cluster"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start kafka container: %w", err)
	}

	brokers, err := container.Brokers(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get brokers: %w", err)
	}

	suffix := uuid.New().String()[:8]
	k := &KafkaContainer{
		Container:     container,
		Brokers:       brokers,
		PaymentsTopic: "test-gocardless-" + suffix,
		DLQTopic:      "test-gocardless-dlq-" + suffix,
		PaymentsGroup: "test-payments-" + suffix,
	}

	// Consumers subscribe before the first publish, so topics must exist.
	for _, topic := range []string{k.PaymentsTopic, k.DLQTopic} {
		if err := createTopic(ctx, container, topic, 3); err != nil {
			_ = container.Terminate(ctx)
			return nil, fmt.Errorf("create topic %s: %w", topic, err)
		}
	}
	return k, nil
}

func createTopic(ctx context.Context, c *kafka.KafkaContainer, topic string, partitions int) error {
	// Kafka can be "up" before it accepts admin requests.
	const attempts = 20
	var lastErr error
	for i := 0; i < attempts; i++ {
		exitCode, reader, err := c.Exec(ctx, []string{
			"kafka-topics",
			"--bootstrap-server", "localhost:9092",
			"--create",
			"--if-not-exists",
			"--topic", topic,
			"--partitions", fmt.Sprintf("%d", partitions),
			"--replication-factor", "1",
		})
		if err == nil && exitCode == 0 {
			return nil
		}

		var out string
		if reader != nil {
			b, _ := io.ReadAll(reader)
			out = strings.TrimSpace(string(b))
		}
		if err != nil {
			lastErr = fmt.Errorf("exec kafka-topics: %w; output=%q", err, out)
		} else {
			lastErr = fmt.Errorf("kafka-topics exit=%d; output=%q", exitCode, out)
		}

		time.Sleep(250 * time.Millisecond)
	}
	return lastErr
}

func (c *KafkaContainer) Cleanup(ctx context.Context) {
	if c.Container != nil {
		_ = c.Container.Terminate(ctx)
	}
}
