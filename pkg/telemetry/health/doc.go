// Package health provides liveness and readiness endpoints for long-running
// mspec processes.
//
// The watch command can expose them next to /metrics:
//
//	checker := health.New(time.Second)
//	checker.RegisterCheck("spec", func(ctx context.Context) error { return lastErr() })
//	health.Register(mux, checker, version, commit, buildTime)
//
// /readyz answers 503 while any check fails, so an orchestrator can alert
// on a spec that stopped validating.
package health
