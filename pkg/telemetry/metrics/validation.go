package metrics

import (
	"time"

	"mercator-hq/marketingspec/pkg/config"
	"mercator-hq/marketingspec/pkg/spec/validator"

	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes used for the result label.
const (
	ResultValid      = "valid"
	ResultInvalid    = "invalid"
	ResultParseError = "parse_error"
)

// ValidationMetrics tracks validation runs.
//
// Metrics:
//   - mspec_spec_validation_runs_total: Runs by result (valid, invalid, parse_error)
//   - mspec_spec_validation_issues_total: Issues reported, by rule code and level
//   - mspec_spec_validation_parse_errors_total: Parse failures by error code
//   - mspec_spec_validation_duration_seconds: Parse plus validate duration
//   - mspec_spec_validation_success_rate: Success rate of the latest run (0-100)
//   - mspec_spec_validation_rules_checked: Rules checked in the latest run
//   - mspec_spec_validation_last_run_timestamp_seconds: Unix time of the latest run
type ValidationMetrics struct {
	runsTotal        *prometheus.CounterVec
	issuesTotal      *prometheus.CounterVec
	parseErrorsTotal *prometheus.CounterVec
	duration         prometheus.Histogram
	successRate      prometheus.Gauge
	rulesChecked     prometheus.Gauge
	lastRun          prometheus.Gauge
}

// NewValidationMetrics creates and registers validation metrics with the provided registry.
func NewValidationMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ValidationMetrics {
	vm := &ValidationMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "validation_runs_total",
				Help:      "Total number of validation runs by result",
			},
			[]string{"result"},
		),

		issuesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "validation_issues_total",
				Help:      "Total number of issues reported by rule code and level",
			},
			[]string{"code", "level"},
		),

		parseErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "validation_parse_errors_total",
				Help:      "Total number of spec files that failed to parse, by error code",
			},
			[]string{"code"},
		),

		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "validation_duration_seconds",
				Help:      "Duration of parsing and validating a spec in seconds",
				// 10µs to ~0.3s
				Buckets: prometheus.ExponentialBuckets(0.00001, 2, 15),
			},
		),

		successRate: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "validation_success_rate",
				Help:      "Percentage of checked rules that passed in the latest run",
			},
		),

		rulesChecked: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "validation_rules_checked",
				Help:      "Number of rules checked in the latest run",
			},
		),

		lastRun: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "validation_last_run_timestamp_seconds",
				Help:      "Unix time of the latest validation run",
			},
		),
	}

	registry.MustRegister(
		vm.runsTotal,
		vm.issuesTotal,
		vm.parseErrorsTotal,
		vm.duration,
		vm.successRate,
		vm.rulesChecked,
		vm.lastRun,
	)

	return vm
}

// RecordResult records a completed validation run.
func (vm *ValidationMetrics) RecordResult(res *validator.Result, d time.Duration, at time.Time) {
	result := ResultValid
	if !res.Valid {
		result = ResultInvalid
	}
	vm.runsTotal.WithLabelValues(result).Inc()

	for _, issue := range res.Issues() {
		vm.issuesTotal.WithLabelValues(issue.Code, string(issue.Level)).Inc()
	}

	vm.duration.Observe(d.Seconds())
	vm.successRate.Set(res.SuccessRate())
	vm.rulesChecked.Set(float64(res.RulesChecked))
	vm.lastRun.Set(float64(at.Unix()))
}

// RecordParseError records a run that stopped at the parser.
func (vm *ValidationMetrics) RecordParseError(code string, d time.Duration, at time.Time) {
	vm.runsTotal.WithLabelValues(ResultParseError).Inc()
	vm.parseErrorsTotal.WithLabelValues(code).Inc()
	vm.duration.Observe(d.Seconds())
	vm.lastRun.Set(float64(at.Unix()))
}
