package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"ispbilling/pkg/metrics"
)

const sweepTimeout = time.Minute

type OverdueMarker interface {
	MarkOverdue(ctx context.Context) (int64, error)
}

// NewScheduler registers the overdue sweep on schedule, a standard cron
// expression or a descriptor such as "@hourly".
func NewScheduler(schedule string, marker OverdueMarker) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	if _, err := c.AddFunc(schedule, func() { sweepOverdue(marker) }); err != nil {
		return nil, fmt.Errorf("invalid overdue sweep schedule %q: %w", schedule, err)
	}
	return c, nil
}

func sweepOverdue(marker OverdueMarker) {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := marker.MarkOverdue(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Overdue sweep failed", slog.Any("error", err))
		return
	}

	metrics.OverdueInvoicesMarked.Add(float64(n))
	slog.InfoContext(ctx, "Overdue sweep finished", "marked", n)
}
