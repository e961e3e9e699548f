package tracing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"mercator-hq/marketingspec/pkg/config"
)

const instrumentationName = "mercator-hq/marketingspec"

// Tracer creates spans for validation runs. The zero value is not usable;
// use New, NewWithProcessor or Nop.
type Tracer struct {
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
}

// Option configures New.
type Option func(*options)

type options struct {
	writer io.Writer
}

// WithWriter sets where the stdout exporter writes. Default: os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.writer = w }
}

// New creates a tracer from cfg. Disabled tracing yields a no-op tracer.
// The tracer must be shut down to flush spans:
//
//	defer tracer.Shutdown(context.Background())
func New(cfg *config.TracingConfig, version string, opts ...Option) (*Tracer, error) {
	if cfg == nil {
		return nil, errors.New("tracing config is nil")
	}
	if !cfg.Enabled {
		return Nop(), nil
	}

	o := options{writer: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	exporter, err := createExporter(context.Background(), cfg, o.writer)
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}

	t, err := NewWithProcessor(cfg, version, sdktrace.NewBatchSpanProcessor(exporter))
	if err != nil {
		_ = exporter.Shutdown(context.Background())
		return nil, err
	}
	return t, nil
}

// NewWithProcessor creates a tracer that hands finished spans to sp,
// ignoring cfg.Enabled and cfg.Exporter.
func NewWithProcessor(cfg *config.TracingConfig, version string, sp sdktrace.SpanProcessor) (*Tracer, error) {
	sampler, err := createSampler(cfg.Sampler, cfg.SampleRatio)
	if err != nil {
		return nil, fmt.Errorf("failed to create sampler: %w", err)
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)
	return &Tracer{
		tracer:   provider.Tracer(instrumentationName, trace.WithInstrumentationVersion(version)),
		provider: provider,
	}, nil
}

// Nop returns a tracer whose spans are never recorded.
func Nop() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}
}

// Start creates a span that is a child of any span in ctx. The returned
// span must be ended.
func (t *Tracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, opts...)
}

// Enabled reports whether spans are exported.
func (t *Tracer) Enabled() bool {
	return t.provider != nil
}

// Shutdown flushes pending spans and stops the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

// TraceID returns the trace ID in ctx, or "" when ctx carries no sampled
// span context.
func TraceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}
