// Package tracing wraps OpenTelemetry for validation runs.
//
// Each run is one trace: a root span named after the command ("validate"
// or "watch.run", carrying the trigger), with "spec.parse" and
// "spec.validate" children. Spans carry the spec file, the parse error
// code or the validation counts, and an error status when the run fails.
//
// # Exporters
//
//   - otlp: OTLP over gRPC to telemetry.tracing.endpoint (default localhost:4317)
//   - otlphttp: OTLP over HTTP, for collectors that only accept HTTP
//   - stdout: JSON spans on the command's error stream, for local debugging
//
// When tracing is disabled New returns a no-op tracer, so callers never
// check whether tracing is on:
//
//	tracer, err := tracing.New(&cfg.Telemetry.Tracing, version)
//	if err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, "validate")
//	defer span.End()
package tracing
