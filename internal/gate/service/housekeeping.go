package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/credgate/credgate/internal/gate/store"
	"github.com/credgate/credgate/pkg/idx"
)

// HousekeepingService periodically prunes event rows older than the
// retention window so the event log doesn't grow without bound.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to 1 hour; a non-positive retention disables pruning.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut it
// down gracefully.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		"interval", s.Interval,
		"retention", s.Retention,
	)
}

// Stop shuts down the worker, blocking until any in-progress cleanup has
// finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup deletes events that fell out of the retention window. Event ids
// are ULIDs, so the cutoff is just an id minted at the cutoff time.
func (s *HousekeepingService) cleanup() {
	if s.Retention <= 0 {
		return
	}

	ctx := context.Background()
	cutoff := idx.NewAt(time.Now().UTC().Add(-s.Retention))

	deleted, err := s.Store.Events().DeleteOlderThan(ctx, cutoff.String())
	if err != nil {
		s.Logger.Error("failed to prune events", "error", err)
		return
	}
	if deleted > 0 {
		s.Logger.Info("pruned events", "deleted", deleted)
	}
}
