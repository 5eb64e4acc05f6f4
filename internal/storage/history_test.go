package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezchuang/pomodoro4linux/internal/core"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h
}

func TestRecord_AssignsID(t *testing.T) {
	h := openTestHistory(t)
	now := time.Now()
	iv := &Interval{Phase: core.PhaseWork, StartedAt: now.Add(-25 * time.Minute), EndedAt: now, Seconds: 1500}

	require.NoError(t, h.Record(context.Background(), iv))
	assert.NotZero(t, iv.ID)
}

func TestSummary_FiltersByTime(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()
	now := time.Now()
	old := now.Add(-48 * time.Hour)

	for _, iv := range []*Interval{
		{Phase: core.PhaseWork, StartedAt: now, EndedAt: now, Seconds: 1500},
		{Phase: core.PhaseWork, StartedAt: now, EndedAt: now, Seconds: 1500},
		{Phase: core.PhaseRest, StartedAt: now, EndedAt: now, Seconds: 300},
		{Phase: core.PhaseWork, StartedAt: old, EndedAt: old, Seconds: 1500},
	} {
		require.NoError(t, h.Record(ctx, iv))
	}

	s, err := h.Summary(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, s.WorkIntervals)
	assert.Equal(t, 1, s.RestIntervals)
	assert.Equal(t, 3000, s.FocusSeconds)

	s, err = h.Summary(ctx, old.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, s.WorkIntervals)
}

func TestSummary(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, h.Record(ctx, &Interval{Phase: core.PhaseWork, StartedAt: now, EndedAt: now, Seconds: 1500}))
	require.NoError(t, h.Record(ctx, &Interval{Phase: core.PhaseWork, StartedAt: now, EndedAt: now, Seconds: 600}))
	require.NoError(t, h.Record(ctx, &Interval{Phase: core.PhaseRest, StartedAt: now, EndedAt: now, Seconds: 300}))

	s, err := h.Summary(ctx, now.Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, Summary{WorkIntervals: 2, RestIntervals: 1, FocusSeconds: 2100}, s)
}

func TestSummary_Empty(t *testing.T) {
	h := openTestHistory(t)
	s, err := h.Summary(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, s)
}

func TestStartOfDay(t *testing.T) {
	at := time.Date(2024, 3, 9, 17, 45, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), StartOfDay(at))
}
