// Package telemetry groups the observability packages used by mspec.
//
//   - logging: slog-based structured logging with run IDs
//   - metrics: Prometheus validation metrics and textfile export
//   - health: liveness and readiness endpoints for the watch command
//
// The validation engine itself never logs or records metrics; the CLI
// wraps each run.
package telemetry
