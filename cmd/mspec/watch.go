package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"mercator-hq/marketingspec/pkg/cli"
	"mercator-hq/marketingspec/pkg/telemetry/health"
	"mercator-hq/marketingspec/pkg/telemetry/logging"
	"mercator-hq/marketingspec/pkg/telemetry/metrics"
	"mercator-hq/marketingspec/pkg/telemetry/tracing"
	"mercator-hq/marketingspec/pkg/watch"
)

var watchFlags struct {
	schedule    string
	debounce    time.Duration
	strict      bool
	format      string
	metricsFile string
	metricsAddr string
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-validate a specification on change and on a schedule",
	Long: `Validate a marketing specification, then validate it again every time the
file changes and, with --schedule, on a cron schedule.

Several rules depend on today's date (campaigns that should have started,
milestones too far ahead, launches still in the future), so a document that
passes today can fail tomorrow without being edited. A daily schedule
catches that.

With --metrics-addr the command serves Prometheus metrics on /metrics and
health endpoints on /healthz, /readyz and /version. /readyz reports 503 while the
last run failed.

Examples:
  # Re-validate on every save
  mspec watch specs/marketing-spec.yaml

  # Also re-validate every morning
  mspec watch specs/marketing-spec.yaml --schedule "0 8 * * *"

  # Serve metrics and health endpoints
  mspec watch specs/marketing-spec.yaml --metrics-addr :9464`,
	Args: cobra.ExactArgs(1),
	RunE: watchSpec,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchFlags.schedule, "schedule", "", "cron expression for periodic runs (default watch.schedule)")
	watchCmd.Flags().DurationVar(&watchFlags.debounce, "debounce", 0, "quiet period after a change before running (default watch.debounce)")
	watchCmd.Flags().BoolVar(&watchFlags.strict, "strict", false, "treat warnings as errors (also validation.strict)")
	watchCmd.Flags().StringVar(&watchFlags.format, "format", "", "output format: text, json (default validation.format)")
	_ = watchCmd.RegisterFlagCompletionFunc("format", completeFormats)
	watchCmd.Flags().StringVar(&watchFlags.metricsFile, "metrics-file", "", "rewrite Prometheus metrics to this textfile after every run")
	watchCmd.Flags().StringVar(&watchFlags.metricsAddr, "metrics-addr", "", "serve metrics and health endpoints on this address")
}

// specStatus remembers the last outcome for the readiness endpoint.
type specStatus struct {
	mu      sync.RWMutex
	ran     bool
	passed  bool
	summary string
}

func (s *specStatus) set(o checkOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ran = true
	s.passed = o.passed()
	s.summary = ""
	if err := o.failure(); err != nil {
		s.summary = err.Error()
	}
}

func (s *specStatus) check(context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ran {
		return errors.New("no validation run yet")
	}
	if !s.passed {
		return errors.New(s.summary)
	}
	return nil
}

func watchSpec(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	path := args[0]

	formatName := watchFlags.format
	if formatName == "" {
		formatName = cfg.Validation.Format
	}
	format, err := cli.ParseOutputFormat(formatName)
	if err != nil {
		return err
	}

	schedule := watchFlags.schedule
	if schedule == "" {
		schedule = cfg.Watch.Schedule
	}
	debounce := watchFlags.debounce
	if debounce == 0 {
		debounce = cfg.Watch.Debounce
	}
	strict := watchFlags.strict || cfg.Validation.Strict

	mc := metricsConfig(cfg, watchFlags.metricsFile, watchFlags.metricsAddr != "")
	collector := metrics.NewCollector(mc, nil)
	checker := newSpecChecker(cfg, collector, strict)
	status := &specStatus{}

	ctx, stop := cli.SetupSignalHandler(commandContext(cmd))
	defer stop()

	log := currentLogger().With(string(logging.SpecFileKey), path)

	tracer, err := newTracer(cmd, cfg)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer shutdownTracer(tracer, log)
	checker.tracer = tracer

	if watchFlags.metricsAddr != "" {
		ln, err := net.Listen("tcp", watchFlags.metricsAddr)
		if err != nil {
			return cli.NewCommandError("watch", fmt.Errorf("failed to listen on %s: %w", watchFlags.metricsAddr, err))
		}
		errCh := serve(ctx, ln, newStatusMux(collector, status))
		log.Info("serving metrics and health endpoints", "addr", ln.Addr().String())
		defer func() {
			stop()
			if err := <-errCh; err != nil {
				log.Error("metrics listener failed", "error", err)
			}
		}()
	}

	out := cmd.OutOrStdout()
	run := func(ctx context.Context, trigger watch.Trigger) {
		ctx, span := tracer.Start(ctx, "watch.run", trace.WithAttributes(
			attribute.String(tracing.AttrTrigger, string(trigger)),
			attribute.String(tracing.AttrSpecFile, path),
		))
		defer span.End()
		ctx = logging.StartRun(ctx)

		outcome := checker.check(ctx, path)
		status.set(outcome)
		tracing.SetStatus(span, outcome.failure())

		attrs := append([]any{"trigger", string(trigger)}, outcome.logAttrs()...)
		if id := tracing.TraceID(ctx); id != "" {
			attrs = append(attrs, "trace_id", id)
		}
		log.InfoContext(ctx, "validation run", attrs...)

		if err := outcome.render(out, format); err != nil {
			log.ErrorContext(ctx, "failed to write report", "error", err)
		}
		if mc.Textfile != "" {
			if err := collector.WriteTextfile(mc.Textfile); err != nil {
				log.ErrorContext(ctx, "failed to write metrics", "error", err)
			}
		}
	}

	err = watch.Run(ctx, watch.Options{
		Path:       path,
		Debounce:   debounce,
		Extensions: cfg.Watch.Extensions,
		Schedule:   schedule,
		Logger:     log.Slog(),
	}, run)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	log.Info("watch stopped")
	return nil
}

// newStatusMux exposes the collector on /metrics and the spec status on
// the health endpoints.
func newStatusMux(collector *metrics.Collector, status *specStatus) *http.ServeMux {
	hc := health.New(2 * time.Second)
	hc.RegisterCheck("spec", status.check)

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	health.Register(mux, hc, Version, GitCommit, BuildDate)
	return mux
}

// serve serves handler on ln until ctx is cancelled. The returned channel
// yields the server's terminal error, nil after a clean shutdown.
func serve(ctx context.Context, ln net.Listener, handler http.Handler) <-chan error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return errCh
}
