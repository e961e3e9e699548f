package tracing

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"mercator-hq/marketingspec/pkg/config"
	specErrors "mercator-hq/marketingspec/pkg/spec/errors"
	"mercator-hq/marketingspec/pkg/spec/validator"
)

func enabledConfig(exporter string) *config.TracingConfig {
	cfg := config.NewDefaultConfig().Telemetry.Tracing
	cfg.Enabled = true
	cfg.Exporter = exporter
	cfg.OTLP.Insecure = true
	return &cfg
}

func recordingTracer(t *testing.T, cfg *config.TracingConfig) (*Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tr, err := NewWithProcessor(cfg, "1.2.3", rec)
	if err != nil {
		t.Fatalf("NewWithProcessor() error = %v", err)
	}
	t.Cleanup(func() { _ = tr.Shutdown(context.Background()) })
	return tr, rec
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.TracingConfig
		wantErr     bool
		wantEnabled bool
	}{
		{"nil config", nil, true, false},
		{"disabled", &config.TracingConfig{}, false, false},
		{"otlp grpc", enabledConfig(ExporterOTLP), false, true},
		{"otlp http", enabledConfig(ExporterOTLPHTTP), false, true},
		{"stdout", enabledConfig(ExporterStdout), false, true},
		{"unknown exporter", enabledConfig("zipkin"), true, false},
		{
			name: "bad sampler",
			config: func() *config.TracingConfig {
				cfg := enabledConfig(ExporterStdout)
				cfg.Sampler = "sometimes"
				return cfg
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := New(tt.config, "1.2.3", WithWriter(&bytes.Buffer{}))
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if tr.Enabled() != tt.wantEnabled {
				t.Errorf("Enabled() = %v, want %v", tr.Enabled(), tt.wantEnabled)
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			// Nothing was recorded, so shutdown does not reach a collector.
			if err := tr.Shutdown(ctx); err != nil {
				t.Errorf("Shutdown() error = %v", err)
			}
		})
	}
}

func TestNop(t *testing.T) {
	tr := Nop()
	ctx, span := tr.Start(context.Background(), "validate")
	defer span.End()

	if span.IsRecording() {
		t.Error("no-op span is recording")
	}
	if TraceID(ctx) != "" {
		t.Errorf("TraceID() = %q, want empty", TraceID(ctx))
	}
	if err := tr.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestTracer_ChildSpans(t *testing.T) {
	tr, rec := recordingTracer(t, enabledConfig(ExporterStdout))

	ctx, root := tr.Start(context.Background(), "watch.run")
	_, child := tr.Start(ctx, "spec.parse")
	child.End()
	root.End()

	if TraceID(ctx) == "" {
		t.Fatal("TraceID() is empty inside a sampled span")
	}

	ended := rec.Ended()
	if len(ended) != 2 {
		t.Fatalf("got %d spans, want 2", len(ended))
	}
	parse, run := ended[0], ended[1]
	if parse.Parent().SpanID() != run.SpanContext().SpanID() {
		t.Error("spec.parse is not a child of watch.run")
	}
	if parse.SpanContext().TraceID().String() != TraceID(ctx) {
		t.Error("child span is in a different trace")
	}

	res := run.Resource()
	if v, ok := res.Set().Value("service.name"); !ok || v.AsString() != "mspec" {
		t.Errorf("service.name = %v", v)
	}
	if v, ok := res.Set().Value("service.version"); !ok || v.AsString() != "1.2.3" {
		t.Errorf("service.version = %v", v)
	}
}

func TestCreateSampler(t *testing.T) {
	tests := []struct {
		strategy string
		ratio    float64
		wantErr  bool
		sampled  bool
	}{
		{SamplerAlways, 0, false, true},
		{SamplerNever, 0, false, false},
		{SamplerRatio, 1, false, true},
		{SamplerRatio, 0, false, false},
		{SamplerRatio, 1.5, true, false},
		{"sometimes", 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			cfg := enabledConfig(ExporterStdout)
			cfg.Sampler, cfg.SampleRatio = tt.strategy, tt.ratio

			rec := tracetest.NewSpanRecorder()
			tr, err := NewWithProcessor(cfg, "test", rec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewWithProcessor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}

			_, span := tr.Start(context.Background(), "validate")
			span.End()
			if got := len(rec.Ended()) == 1; got != tt.sampled {
				t.Errorf("sampled = %v, want %v", got, tt.sampled)
			}
		})
	}
}

func TestSetResult(t *testing.T) {
	tests := []struct {
		name       string
		res        *validator.Result
		strict     bool
		wantStatus codes.Code
		wantPassed bool
	}{
		{
			name:       "clean",
			res:        &validator.Result{Valid: true, RulesChecked: 4, RulesPassed: 4},
			wantStatus: codes.Unset,
			wantPassed: true,
		},
		{
			name:       "errors",
			res:        &validator.Result{Valid: false, Errors: []validator.Issue{{Code: "CAMP-08"}}, RulesChecked: 4, RulesPassed: 3},
			wantStatus: codes.Error,
		},
		{
			name:       "warning in strict mode",
			res:        &validator.Result{Valid: true, Warnings: []validator.Issue{{Code: "VR-P06"}}, RulesChecked: 4, RulesPassed: 3},
			strict:     true,
			wantStatus: codes.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, rec := recordingTracer(t, enabledConfig(ExporterStdout))
			_, span := tr.Start(context.Background(), "spec.validate")
			SetResult(span, tt.res, tt.strict)
			span.End()

			got := rec.Ended()[0]
			if got.Status().Code != tt.wantStatus {
				t.Errorf("status = %v, want %v", got.Status().Code, tt.wantStatus)
			}
			a := attrs(got)
			if a[AttrPassed].AsBool() != tt.wantPassed {
				t.Errorf("%s = %v, want %v", AttrPassed, a[AttrPassed].AsBool(), tt.wantPassed)
			}
			if a[AttrErrors].AsInt64() != int64(len(tt.res.Errors)) {
				t.Errorf("%s = %d", AttrErrors, a[AttrErrors].AsInt64())
			}
			if a[AttrRulesChecked].AsInt64() != 4 {
				t.Errorf("%s = %d, want 4", AttrRulesChecked, a[AttrRulesChecked].AsInt64())
			}
		})
	}
}

func TestSetParseError(t *testing.T) {
	tr, rec := recordingTracer(t, enabledConfig(ExporterStdout))

	_, ok := tr.Start(context.Background(), "spec.parse")
	SetParseError(ok, nil)
	ok.End()

	_, failed := tr.Start(context.Background(), "spec.parse")
	SetParseError(failed, specErrors.New(specErrors.CodeMissingField, "Missing required field: 'project'", "Add project"))
	failed.End()

	ended := rec.Ended()
	if ended[0].Status().Code != codes.Unset || len(ended[0].Events()) != 0 {
		t.Errorf("nil error changed the span: %v", ended[0].Status())
	}
	if ended[1].Status().Code != codes.Error {
		t.Errorf("status = %v, want Error", ended[1].Status().Code)
	}
	if got := attrs(ended[1])[AttrParseErrorCode].AsString(); got != string(specErrors.CodeMissingField) {
		t.Errorf("%s = %q", AttrParseErrorCode, got)
	}
	if len(ended[1].Events()) != 1 || ended[1].Events()[0].Name != "exception" {
		t.Errorf("error not recorded as an event: %v", ended[1].Events())
	}
}

func TestSetStatus(t *testing.T) {
	tr, rec := recordingTracer(t, enabledConfig(ExporterStdout))

	_, span := tr.Start(context.Background(), "watch.run")
	SetStatus(span, errors.New("2 validation error(s)"))
	span.End()

	got := rec.Ended()[0].Status()
	if got.Code != codes.Error || !strings.Contains(got.Description, "validation error") {
		t.Errorf("status = %+v", got)
	}
}

func TestStdoutExporter_WritesSpans(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(enabledConfig(ExporterStdout), "1.2.3", WithWriter(&buf))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, span := tr.Start(context.Background(), "validate")
	span.End()
	if err := tr.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if !strings.Contains(buf.String(), `"Name":"validate"`) {
		t.Errorf("span not exported:\n%s", buf.String())
	}
}
