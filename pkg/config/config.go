package config

import "time"

// Config is the root configuration for the mspec toolkit.
type Config struct {
	// Validation controls how spec files are parsed and validated.
	Validation ValidationConfig `yaml:"validation"`

	// Watch controls the watch command.
	Watch WatchConfig `yaml:"watch"`

	// Scaffold controls the init and new commands.
	Scaffold ScaffoldConfig `yaml:"scaffold"`

	// Telemetry configures logging, metrics and tracing.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ValidationConfig contains validation settings.
type ValidationConfig struct {
	// Strict treats warnings as failures.
	// Default: false
	Strict bool `yaml:"strict"`

	// Format is the report format.
	// Options: "text", "json"
	// Default: "text"
	Format string `yaml:"format"`

	// MaxFileSize is the largest spec file accepted, in bytes.
	// Default: 10485760 (10MB)
	MaxFileSize int64 `yaml:"max_file_size"`
}

// WatchConfig contains settings for re-validation on change.
type WatchConfig struct {
	// Debounce is the quiet period after a file event before re-validating.
	// Default: 200ms
	Debounce time.Duration `yaml:"debounce"`

	// Schedule is an optional cron expression for periodic re-validation.
	// Time-relative rules can change outcome as days pass.
	// Example: "0 8 * * *"
	Schedule string `yaml:"schedule"`

	// Extensions lists file extensions that trigger re-validation.
	// Default: [".yaml", ".yml", ".json"]
	Extensions []string `yaml:"extensions"`
}

// ScaffoldConfig contains project generation settings.
type ScaffoldConfig struct {
	// DefaultTemplate is used when no --template flag is given.
	// Options: "minimal", "default", "full"
	// Default: "default"
	DefaultTemplate string `yaml:"default_template"`
}

// TelemetryConfig contains observability settings.
type TelemetryConfig struct {
	// Logging configures structured logging.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures Prometheus metrics.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing configures OpenTelemetry spans around validation runs.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled turns on metric collection.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Namespace prefixes every metric name.
	// Default: "mspec"
	Namespace string `yaml:"namespace"`

	// Subsystem is the second metric name component.
	// Default: "spec"
	Subsystem string `yaml:"subsystem"`

	// Textfile is where metrics are written in the text exposition format
	// after each run, for the node exporter textfile collector.
	Textfile string `yaml:"textfile"`
}

// TracingConfig contains OpenTelemetry tracing settings. Each validation
// run is one trace with parse and validate child spans.
type TracingConfig struct {
	// Enabled turns on span export.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "always"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of runs to sample (0.0 to 1.0).
	// Only used when Sampler is "ratio".
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio"`

	// Exporter selects where spans go.
	// Options: "otlp" (gRPC), "otlphttp", "stdout"
	// Default: "otlp"
	Exporter string `yaml:"exporter"`

	// Endpoint is the collector address for the OTLP exporters.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// ServiceName is reported as service.name.
	// Default: "mspec"
	ServiceName string `yaml:"service_name"`

	// OTLP holds exporter connection settings.
	OTLP OTLPConfig `yaml:"otlp"`
}

// OTLPConfig contains OTLP exporter settings.
type OTLPConfig struct {
	// Insecure disables TLS to the collector.
	// Default: false
	Insecure bool `yaml:"insecure"`

	// Timeout bounds each export.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`

	// Headers are sent with every export, e.g. an API key for a hosted
	// collector.
	Headers map[string]string `yaml:"headers"`
}
