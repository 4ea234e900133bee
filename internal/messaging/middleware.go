package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"ispbilling/pkg/metrics"
)

const dlqPublishTimeout = 5 * time.Second

// RetryConfig configures retry behavior.
type RetryConfig struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     5 * time.Second,
	}
}

var (
	// ErrMaxRetriesExceeded is returned when all retry attempts fail.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")

	// ErrPermanent marks a failure that retrying cannot fix, such as an
	// undecodable message.
	ErrPermanent = errors.New("permanent failure")
)

// Permanent wraps err so WithRetry gives up immediately.
func Permanent(err error) error {
	return fmt.Errorf("%w: %w", ErrPermanent, err)
}

// WithRetry wraps a handler with exponential backoff + jitter retry logic.
func WithRetry(handler MessageHandler, cfg RetryConfig) MessageHandler {
	return func(ctx context.Context, key, value []byte) error {
		backoff := cfg.InitialBackoff

		var lastErr error
		for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
			lastErr = handler(ctx, key, value)
			if lastErr == nil {
				return nil
			}
			if errors.Is(lastErr, ErrPermanent) {
				return lastErr
			}

			if attempt < cfg.MaxAttempts-1 {
				jitter := time.Duration(rand.Intn(100)) * time.Millisecond
				sleepTime := backoff + jitter
				if sleepTime > cfg.MaxBackoff {
					sleepTime = cfg.MaxBackoff
				}

				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(sleepTime):
				}

				backoff *= 2
			}
		}

		return errors.Join(ErrMaxRetriesExceeded, lastErr)
	}
}

// DLQPublisher can publish failed messages to a dead letter queue.
type DLQPublisher interface {
	PublishToDLQ(ctx context.Context, key, value []byte, err error) error
}

// WithDLQ sends messages that still fail after the inner handler to the DLQ
// and reports success so the consumer commits the offset.
func WithDLQ(handler MessageHandler, dlq DLQPublisher) MessageHandler {
	return func(ctx context.Context, key, value []byte) error {
		err := handler(ctx, key, value)
		if err == nil {
			return nil
		}

		// The main context may already be cancelled during shutdown.
		dlqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dlqPublishTimeout)
		defer cancel()

		if dlqErr := dlq.PublishToDLQ(dlqCtx, key, value, err); dlqErr != nil {
			slog.ErrorContext(ctx, "DLQ publish failed, message will be redelivered",
				"key", string(key), slog.Any("error", dlqErr))
			return dlqErr
		}
		setOutcome(ctx, metrics.OutcomeDeadLettered)
		return nil
	}
}

type outcomeKey struct{}

// setOutcome overrides the outcome WithMetrics will record for this message.
func setOutcome(ctx context.Context, outcome string) {
	if p, ok := ctx.Value(outcomeKey{}).(*string); ok {
		*p = outcome
	}
}

// WithMetrics records how long each message took and what became of it:
// processed, dead-lettered by an inner WithDLQ, or left for redelivery.
func WithMetrics(topic string, handler MessageHandler) MessageHandler {
	return func(ctx context.Context, key, value []byte) error {
		outcome := metrics.OutcomeProcessed
		ctx = context.WithValue(ctx, outcomeKey{}, &outcome)

		start := time.Now()
		err := handler(ctx, key, value)
		if err != nil {
			outcome = metrics.OutcomeRedelivered
		}

		metrics.PaymentMessageDuration.WithLabelValues(topic).Observe(time.Since(start).Seconds())
		metrics.PaymentMessagesTotal.WithLabelValues(topic, outcome).Inc()
		return err
	}
}
