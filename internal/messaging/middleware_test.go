package messaging

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ispbilling/pkg/metrics"
)

var fastRetry = RetryConfig{MaxAttempts: 3, InitialBackoff: time.Millisecond, MaxBackoff: 5 * time.Millisecond}

type fakeDLQ struct {
	calls   int
	lastErr error
	failErr error
}

func (d *fakeDLQ) PublishToDLQ(_ context.Context, _, _ []byte, err error) error {
	d.calls++
	d.lastErr = err
	return d.failErr
}

func TestWithRetry(t *testing.T) {
	t.Run("retries until success", func(t *testing.T) {
		var calls atomic.Int32
		handler := WithRetry(func(context.Context, []byte, []byte) error {
			if calls.Add(1) < 3 {
				return errors.New("transient")
			}
			return nil
		}, fastRetry)

		err := handler(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		var calls atomic.Int32
		cause := errors.New("still broken")
		handler := WithRetry(func(context.Context, []byte, []byte) error {
			calls.Add(1)
			return cause
		}, fastRetry)

		err := handler(context.Background(), nil, nil)

		assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("does not retry permanent failures", func(t *testing.T) {
		var calls atomic.Int32
		handler := WithRetry(func(context.Context, []byte, []byte) error {
			calls.Add(1)
			return Permanent(errors.New("bad json"))
		}, fastRetry)

		err := handler(context.Background(), nil, nil)

		assert.ErrorIs(t, err, ErrPermanent)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		handler := WithRetry(func(context.Context, []byte, []byte) error {
			cancel()
			return errors.New("transient")
		}, RetryConfig{MaxAttempts: 5, InitialBackoff: time.Second, MaxBackoff: time.Second})

		err := handler(ctx, nil, nil)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestWithDLQ(t *testing.T) {
	t.Run("passes through success", func(t *testing.T) {
		dlq := &fakeDLQ{}
		handler := WithDLQ(func(context.Context, []byte, []byte) error { return nil }, dlq)

		require.NoError(t, handler(context.Background(), []byte("k"), []byte("v")))
		assert.Zero(t, dlq.calls)
	})

	t.Run("dead-letters failures and commits", func(t *testing.T) {
		dlq := &fakeDLQ{}
		cause := errors.New("boom")
		handler := WithDLQ(func(context.Context, []byte, []byte) error { return cause }, dlq)

		err := handler(context.Background(), []byte("k"), []byte("v"))

		require.NoError(t, err)
		assert.Equal(t, 1, dlq.calls)
		assert.ErrorIs(t, dlq.lastErr, cause)
	})

	t.Run("surfaces DLQ outage so the message is redelivered", func(t *testing.T) {
		dlq := &fakeDLQ{failErr: errors.New("kafka down")}
		handler := WithDLQ(func(context.Context, []byte, []byte) error { return errors.New("boom") }, dlq)

		err := handler(context.Background(), []byte("k"), []byte("v"))

		assert.EqualError(t, err, "kafka down")
	})
}

func TestWithMetrics(t *testing.T) {
	const topic = "webhooks.gocardless"
	count := func(outcome string) float64 {
		return testutil.ToFloat64(metrics.PaymentMessagesTotal.WithLabelValues(topic, outcome))
	}
	metrics.PaymentMessagesTotal.Reset()

	ok := WithMetrics(topic, func(context.Context, []byte, []byte) error { return nil })
	require.NoError(t, ok(context.Background(), nil, nil))

	deadLettered := WithMetrics(topic, WithDLQ(func(context.Context, []byte, []byte) error {
		return errors.New("boom")
	}, &fakeDLQ{}))
	require.NoError(t, deadLettered(context.Background(), nil, nil))

	cause := errors.New("kafka down")
	redelivered := WithMetrics(topic, WithDLQ(func(context.Context, []byte, []byte) error {
		return errors.New("boom")
	}, &fakeDLQ{failErr: cause}))
	assert.ErrorIs(t, redelivered(context.Background(), nil, nil), cause)

	assert.Equal(t, 1.0, count(metrics.OutcomeProcessed))
	assert.Equal(t, 1.0, count(metrics.OutcomeDeadLettered))
	assert.Equal(t, 1.0, count(metrics.OutcomeRedelivered))
}
