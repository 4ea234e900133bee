package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMarker struct {
	calls int
	n     int64
	err   error
}

func (m *stubMarker) MarkOverdue(context.Context) (int64, error) {
	m.calls++
	return m.n, m.err
}

func TestNewScheduler(t *testing.T) {
	t.Run("accepts descriptors and cron expressions", func(t *testing.T) {
		for _, schedule := range []string{"@hourly", "@every 30m", "0 2 * * *"} {
			c, err := NewScheduler(schedule, &stubMarker{})
			require.NoError(t, err, schedule)
			assert.Len(t, c.Entries(), 1)
		}
	})

	t.Run("rejects invalid schedule", func(t *testing.T) {
		_, err := NewScheduler("every hour", &stubMarker{})
		assert.Error(t, err)
	})
}

func TestSweepOverdue(t *testing.T) {
	m := &stubMarker{n: 3}
	sweepOverdue(m)
	assert.Equal(t, 1, m.calls)

	failing := &stubMarker{err: errors.New("db down")}
	sweepOverdue(failing)
	assert.Equal(t, 1, failing.calls)
}
