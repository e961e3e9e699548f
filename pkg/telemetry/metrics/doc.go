// Package metrics provides Prometheus metrics for mspec validation runs.
//
// A Collector owns its own registry. The CLI writes it to a textfile for
// the node exporter after each run; the watch command can also serve it
// over HTTP.
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	collector.RecordResult(res, time.Since(start))
//	err := collector.WriteTextfile("/var/lib/node_exporter/mspec.prom")
//
// Label cardinality is bounded by the rule catalogue: issues are labelled
// by rule code and level, never by entity ID.
package metrics
