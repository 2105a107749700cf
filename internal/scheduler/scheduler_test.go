package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nprstory/internal/domain"
)

type countingSyncer struct {
	calls atomic.Int32
	err   error
}

func (c *countingSyncer) Sync(ctx context.Context) (*domain.SyncStats, error) {
	c.calls.Add(1)
	return &domain.SyncStats{}, c.err
}

func newTestScheduler(s Syncer, interval time.Duration) *Scheduler {
	return NewScheduler(s, interval, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestScheduler_RunsImmediatelyAndOnTick(t *testing.T) {
	syncer := &countingSyncer{}
	sched := newTestScheduler(syncer, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sched.Start(ctx) }()

	require.Eventually(t, func() bool { return syncer.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestScheduler_Trigger(t *testing.T) {
	syncer := &countingSyncer{err: errors.New("api down")}
	sched := newTestScheduler(syncer, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = sched.Start(ctx) }()

	require.Eventually(t, func() bool { return syncer.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	assert.True(t, sched.Trigger())
	require.Eventually(t, func() bool { return syncer.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_TriggerMergesPendingRequests(t *testing.T) {
	sched := newTestScheduler(&countingSyncer{}, time.Hour)

	assert.True(t, sched.Trigger())
	assert.False(t, sched.Trigger())
}
