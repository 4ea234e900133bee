package gocardless

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    5 * time.Second,
	}
}

// doWithRetry retries fn while it fails with ErrProviderUnavailable.
func doWithRetry(ctx context.Context, cfg RetryConfig, fn func() error) error {
	attempts := max(cfg.MaxAttempts, 1)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !errors.Is(err, ErrProviderUnavailable) || attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff(attempt, cfg.BaseDelay, cfg.MaxDelay)):
		}
	}
	return lastErr
}

// backoff is base * 2^attempt with +-25% jitter, capped at maxDelay.
func backoff(attempt int, base, maxDelay time.Duration) time.Duration {
	delay := float64(base) * math.Pow(2, float64(attempt))
	delay += delay * 0.25 * (rand.Float64()*2 - 1)
	if delay > float64(maxDelay) {
		delay = float64(maxDelay)
	}
	return time.Duration(delay)
}
