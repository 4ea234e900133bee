//go:build integration
// +build integration

package testinfra

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type TestSuite struct {
	Postgres *PostgresContainer
	Kafka    *KafkaContainer
}

type SuiteOptions struct {
	WithKafka bool
}

// NewTestSuite starts the requested containers in parallel.
func NewTestSuite(ctx context.Context, opts SuiteOptions) (*TestSuite, error) {
	suite := &TestSuite{}
	var wg sync.WaitGroup
	errCh := make(chan error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		pg, err := NewPostgres(ctx)
		if err != nil {
			errCh <- fmt.Errorf("postgres: %w", err)
			return
		}
		suite.Postgres = pg
	}()

	if opts.WithKafka {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k, err := NewKafka(ctx)
			if err != nil {
				errCh <- fmt.Errorf("kafka: %w", err)
				return
			}
			suite.Kafka = k
		}()
	}

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		suite.Cleanup(ctx)
		return nil, fmt.Errorf("failed to start containers: %w", errors.Join(errs...))
	}
	return suite, nil
}

func (s *TestSuite) Cleanup(ctx context.Context) {
	if s.Kafka != nil {
		s.Kafka.Cleanup(ctx)
	}
	if s.Postgres != nil {
		s.Postgres.Cleanup(ctx)
	}
}
