package metrics

import (
	"fmt"
	"time"

	"mercator-hq/marketingspec/pkg/config"
	specerrors "mercator-hq/marketingspec/pkg/spec/errors"
	"mercator-hq/marketingspec/pkg/spec/validator"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector owns the mspec metrics and the registry they live in.
// A disabled collector accepts every call and records nothing.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry
	now      func() time.Time

	validationMetrics *ValidationMetrics
}

// NewCollector creates a metrics collector. If registry is nil a fresh
// registry is created; the process-wide default registry is never used.
//
// Example:
//
//	cfg := &config.MetricsConfig{Enabled: true, Namespace: "mspec", Subsystem: "spec"}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}

	return &Collector{
		config:            cfg,
		registry:          registry,
		now:               time.Now,
		validationMetrics: NewValidationMetrics(cfg, registry),
	}
}

// RecordResult records the outcome of a validation run that reached the
// rule engine.
func (c *Collector) RecordResult(res *validator.Result, d time.Duration) {
	if !c.config.Enabled || res == nil {
		return
	}
	c.validationMetrics.RecordResult(res, d, c.now())
}

// RecordParseError records a run that failed before validation. The label
// is the error's taxonomy code, or "unknown" for I/O errors.
func (c *Collector) RecordParseError(err error, d time.Duration) {
	if !c.config.Enabled || err == nil {
		return
	}
	code := string(specerrors.CodeOf(err))
	if code == "" {
		code = "unknown"
	}
	c.validationMetrics.RecordParseError(code, d, c.now())
}

// WriteTextfile writes every metric to path in the text exposition format,
// for the node exporter textfile collector. The file is replaced atomically.
func (c *Collector) WriteTextfile(path string) error {
	if !c.config.Enabled {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %q: %w", path, err)
	}
	return nil
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
