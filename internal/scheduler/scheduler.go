// Package scheduler runs the saved-query sync on an interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"nprstory/internal/domain"
)

// Syncer runs one pass over every saved query.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

const defaultRunTimeout = 5 * time.Minute

type Scheduler struct {
	syncer     Syncer
	interval   time.Duration
	runTimeout time.Duration
	trigger    chan struct{}
	logger     *slog.Logger
}

func NewScheduler(syncer Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:     syncer,
		interval:   interval,
		runTimeout: defaultRunTimeout,
		trigger:    make(chan struct{}, 1),
		logger:     logger.With("component", "scheduler"),
	}
}

// Trigger asks for a run as soon as the current one, if any, finishes.
// Requests made while one is already pending are merged. It reports whether
// a new request was queued.
func (s *Scheduler) Trigger() bool {
	select {
	case s.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

// Start runs a sync immediately and then on every tick or trigger until ctx
// is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		case <-s.trigger:
			s.logger.Info("sync triggered")
			s.runSync(ctx)
			ticker.Reset(s.interval)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if _, err := s.syncer.Sync(syncCtx); err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}
