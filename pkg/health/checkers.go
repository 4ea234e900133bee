package health

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/segmentio/kafka-go"
)

type PostgresChecker struct {
	pool *pgxpool.Pool
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// KafkaChecker reports up when any broker answers and the topic has partitions.
type KafkaChecker struct {
	brokers []string
	topic   string
}

func NewKafkaChecker(brokers []string, topic string) *KafkaChecker {
	return &KafkaChecker{brokers: brokers, topic: topic}
}

func (c *KafkaChecker) Name() string { return "kafka" }

func (c *KafkaChecker) Check(ctx context.Context) error {
	var errs []error
	for _, broker := range c.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", broker, err))
			continue
		}
		partitions, err := conn.ReadPartitions(c.topic)
		_ = conn.Close()
		if err != nil {
			return fmt.Errorf("read partitions of %s: %w", c.topic, err)
		}
		if len(partitions) == 0 {
			return fmt.Errorf("topic %s has no partitions", c.topic)
		}
		return nil
	}
	if len(errs) == 0 {
		return errors.New("no brokers configured")
	}
	return errors.Join(errs...)
}
