package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/zunohq/zuno/internal/workspaces/store"
)

// HousekeepingService periodically sweeps time-bounded records: pending
// invites past their deadline are marked expired, and stale email
// verification tokens are cleared.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given
// interval. If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs the sweep.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress sweep.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

// run is the main background worker loop.
func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run a sweep immediately on startup
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep performs the actual expiry passes. Each pass is independent;
// a failure in one won't stop the others.
func (s *HousekeepingService) sweep() {
	ctx := context.Background()
	now := time.Now().UTC()

	expired, err := s.Store.Invites().MarkExpiredInvites(ctx, now)
	if err != nil {
		s.Logger.Error("failed to mark expired invites", "error", err)
	} else if expired > 0 {
		s.Logger.Info("marked expired invites", "count", expired)
	}

	cleared, err := s.Store.Users().ClearExpiredVerificationTokens(ctx, now)
	if err != nil {
		s.Logger.Error("failed to clear expired verification tokens", "error", err)
	} else if cleared > 0 {
		s.Logger.Info("cleared expired verification tokens", "count", cleared)
	}
}
