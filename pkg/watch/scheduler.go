package watch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs validation on a cron schedule. Rules that compare
// dates against today can change outcome without the file changing.
type Scheduler struct {
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewScheduler validates schedule (standard five-field cron or a
// descriptor such as "@daily") and returns an idle scheduler.
//
// Common expressions:
//   - "0 8 * * *"     - Daily at 8 AM
//   - "0 8 * * MON"   - Mondays at 8 AM
//   - "@every 6h"     - Every six hours
func NewScheduler(schedule string, logger *slog.Logger) (*Scheduler, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		schedule: schedule,
		// a run still in progress when the next tick fires is not doubled up
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger.With("component", "watch.scheduler"),
	}, nil
}

// Start schedules job and returns immediately. The scheduler stops when
// ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context, job func(ctx context.Context)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if _, err := s.cron.AddFunc(s.schedule, func() { job(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule validation: %w", err)
	}

	s.cron.Start()
	s.running = true
	s.logger.Info("validation scheduler started", "schedule", s.schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		<-s.cron.Stop().Done()
		s.running = false
		s.logger.Debug("validation scheduler stopped")
	}
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextRun returns the next scheduled run, or nil before Start.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}
