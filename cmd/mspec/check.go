package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"mercator-hq/marketingspec/pkg/cli"
	"mercator-hq/marketingspec/pkg/config"
	"mercator-hq/marketingspec/pkg/spec/model"
	"mercator-hq/marketingspec/pkg/spec/parser"
	"mercator-hq/marketingspec/pkg/spec/validator"
	"mercator-hq/marketingspec/pkg/telemetry/logging"
	"mercator-hq/marketingspec/pkg/telemetry/metrics"
	"mercator-hq/marketingspec/pkg/telemetry/tracing"
)

// specChecker parses and validates one file per call and records the
// outcome in its metrics collector. validate runs it once; watch reuses it.
// Parsing and validation are traced as children of the span in ctx.
type specChecker struct {
	parser    *parser.Parser
	validator *validator.Validator
	collector *metrics.Collector
	tracer    *tracing.Tracer
	strict    bool
	verbose   bool
}

func newSpecChecker(cfg *config.Config, collector *metrics.Collector, strict bool) *specChecker {
	return &specChecker{
		parser:    parser.NewParser().WithMaxFileSize(cfg.Validation.MaxFileSize),
		validator: validator.NewValidator(),
		collector: collector,
		tracer:    tracing.Nop(),
		strict:    strict,
		verbose:   verbose,
	}
}

// checkOutcome is the result of one run: either a report or a parse error.
type checkOutcome struct {
	path     string
	report   *cli.Report
	parseErr error
	duration time.Duration
}

func (c *specChecker) check(ctx context.Context, path string) checkOutcome {
	return c.run(ctx, path, time.Time{}, func() (*model.Document, error) {
		return c.parser.Parse(path)
	})
}

// checkBytes validates content read from somewhere other than path, such
// as a committed revision. A non-zero at fixes the validation clock.
func (c *specChecker) checkBytes(ctx context.Context, path string, data []byte, at time.Time) checkOutcome {
	return c.run(ctx, path, at, func() (*model.Document, error) {
		return c.parser.ParseBytes(data, parser.DetectFormat(path))
	})
}

func (c *specChecker) run(ctx context.Context, path string, at time.Time, parse func() (*model.Document, error)) checkOutcome {
	start := time.Now()

	_, span := c.tracer.Start(ctx, "spec.parse", trace.WithAttributes(attribute.String(tracing.AttrSpecFile, path)))
	doc, err := parse()
	tracing.SetParseError(span, err)
	span.End()
	if err != nil {
		d := time.Since(start)
		c.collector.RecordParseError(err, d)
		return checkOutcome{path: path, parseErr: err, duration: d}
	}

	_, span = c.tracer.Start(ctx, "spec.validate")
	var res *validator.Result
	if at.IsZero() {
		res = c.validator.Validate(doc)
	} else {
		res = c.validator.ValidateAt(doc, at)
	}
	tracing.SetResult(span, res, c.strict)
	span.End()

	d := time.Since(start)
	c.collector.RecordResult(res, d)
	return checkOutcome{
		path:     path,
		report:   cli.NewReport(path, res, c.strict, c.verbose),
		duration: d,
	}
}

func (o checkOutcome) passed() bool {
	return o.parseErr == nil && o.report.Passed
}

// failure describes why the run did not pass, or is nil when it passed.
func (o checkOutcome) failure() error {
	switch {
	case o.parseErr != nil:
		return errors.New("specification does not parse")
	case !o.report.Valid:
		return fmt.Errorf("%d validation error(s)", o.report.ErrorCount)
	case !o.report.Passed:
		return fmt.Errorf("%d warning(s) in strict mode", o.report.WarningCount)
	}
	return nil
}

func (o checkOutcome) render(w io.Writer, format cli.OutputFormat) error {
	if o.parseErr != nil {
		return cli.RenderParseFailure(w, format, o.path, o.parseErr)
	}
	return cli.Render(w, format, o.report)
}

// logAttrs summarizes the outcome for structured logs.
func (o checkOutcome) logAttrs() []any {
	attrs := []any{"duration_ms", o.duration.Milliseconds(), "passed", o.passed()}
	if o.parseErr != nil {
		return append(attrs, "parse_error", true)
	}
	return append(attrs,
		"valid", o.report.Valid,
		"errors", o.report.ErrorCount,
		"warnings", o.report.WarningCount,
		"success_rate", o.report.SuccessRate,
	)
}

// metricsConfig returns the metrics settings for a run, enabling the
// collector whenever an output for it was requested.
func metricsConfig(cfg *config.Config, textfile string, serving bool) *config.MetricsConfig {
	mc := cfg.Telemetry.Metrics
	if textfile != "" {
		mc.Textfile = textfile
	}
	if mc.Textfile != "" || serving {
		mc.Enabled = true
	}
	return &mc
}

// newTracer builds the run tracer from telemetry.tracing. The stdout
// exporter writes to the command's error stream so reports stay parseable.
func newTracer(cmd *cobra.Command, cfg *config.Config) (*tracing.Tracer, error) {
	return tracing.New(&cfg.Telemetry.Tracing, Version, tracing.WithWriter(cmd.ErrOrStderr()))
}

func shutdownTracer(tracer *tracing.Tracer, log *logging.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tracer.Shutdown(ctx); err != nil {
		log.Warn("failed to flush spans", "error", err)
	}
}
