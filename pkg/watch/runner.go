package watch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Trigger says why a run happened.
type Trigger string

const (
	TriggerStart    Trigger = "start"
	TriggerChange   Trigger = "change"
	TriggerSchedule Trigger = "schedule"
)

// RunFunc performs one validation pass.
type RunFunc func(ctx context.Context, trigger Trigger)

// Options configures Run.
type Options struct {
	// Path is the spec file or directory to watch.
	Path string

	Debounce   time.Duration
	Extensions []string

	// Schedule is an optional cron expression for periodic runs.
	Schedule string

	Logger *slog.Logger
}

// Run calls fn once immediately, then again after every debounced change
// to opts.Path and on every tick of opts.Schedule, until ctx is cancelled.
// Calls to fn never overlap.
func Run(ctx context.Context, opts Options, fn RunFunc) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := DefaultFileWatcherConfig()
	cfg.Path = opts.Path
	if opts.Debounce > 0 {
		cfg.DebounceInterval = opts.Debounce
	}
	if len(opts.Extensions) > 0 {
		cfg.Extensions = opts.Extensions
	}

	fw, err := NewFileWatcher(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = fw.Stop() }()

	var mu sync.Mutex
	run := func(ctx context.Context, trigger Trigger) {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		fn(ctx, trigger)
	}

	run(ctx, TriggerStart)

	if opts.Schedule != "" {
		sched, err := NewScheduler(opts.Schedule, logger)
		if err != nil {
			return err
		}
		if err := sched.Start(ctx, func(ctx context.Context) { run(ctx, TriggerSchedule) }); err != nil {
			return err
		}
		defer sched.Stop()
	}

	if err := fw.Watch(ctx, func(string) { run(ctx, TriggerChange) }); err != nil {
		return fmt.Errorf("watch %q: %w", opts.Path, err)
	}
	return nil
}
