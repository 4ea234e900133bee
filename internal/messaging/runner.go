package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// Runner runs several workers with one handler and stops them all when any fails.
type Runner struct {
	workers []Worker
	handler MessageHandler
}

func NewRunner(workers []Worker, handler MessageHandler) *Runner {
	return &Runner{
		workers: workers,
		handler: handler,
	}
}

// Start blocks until ctx is cancelled or a worker returns an error.
// Workers are closed on exit.
func (r *Runner) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for i, w := range r.workers {
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("Worker panic recovered",
						"worker_idx", i,
						"panic", rec,
						"stack", string(debug.Stack()))
					err = fmt.Errorf("worker %d panicked: %v", i, rec)
				}
				if closeErr := w.Close(); closeErr != nil {
					slog.Error("Failed to close worker", "worker_idx", i, slog.Any("error", closeErr))
				}
			}()
			return w.Start(ctx, r.handler)
		})
	}

	return g.Wait()
}
