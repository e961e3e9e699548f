package config

import "time"

// Default values for configuration fields.
const (
	// Validation defaults
	DefaultValidationStrict = false
	DefaultValidationFormat = "text"
	DefaultMaxFileSize      = int64(10 * 1024 * 1024)

	// Watch defaults
	DefaultWatchDebounce = 200 * time.Millisecond

	// Scaffold defaults
	DefaultScaffoldTemplate = "default"

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "text"
	DefaultMetricsNamespace = "mspec"
	DefaultMetricsSubsystem = "spec"
	DefaultTracingSampler   = "always"
	DefaultTracingRatio     = 1.0
	DefaultTracingExporter  = "otlp"
	DefaultTracingEndpoint  = "localhost:4317"
	DefaultTracingService   = "mspec"
	DefaultOTLPTimeout      = 10 * time.Second
)

// DefaultWatchExtensions are the file extensions watched by default.
var DefaultWatchExtensions = []string{".yaml", ".yml", ".json"}

// NewDefaultConfig returns a configuration with every default applied.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with their defaults. Fields that
// are already set are left unchanged.
func ApplyDefaults(cfg *Config) {
	// Validation defaults
	if cfg.Validation.Format == "" {
		cfg.Validation.Format = DefaultValidationFormat
	}
	if cfg.Validation.MaxFileSize == 0 {
		cfg.Validation.MaxFileSize = DefaultMaxFileSize
	}

	// Watch defaults
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultWatchDebounce
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultWatchExtensions...)
	}

	// Scaffold defaults
	if cfg.Scaffold.DefaultTemplate == "" {
		cfg.Scaffold.DefaultTemplate = DefaultScaffoldTemplate
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}

	tc := &cfg.Telemetry.Tracing
	if tc.Sampler == "" {
		tc.Sampler = DefaultTracingSampler
	}
	// Zero means unset; the "never" sampler turns sampling off.
	if tc.SampleRatio == 0 {
		tc.SampleRatio = DefaultTracingRatio
	}
	if tc.Exporter == "" {
		tc.Exporter = DefaultTracingExporter
	}
	if tc.Endpoint == "" {
		tc.Endpoint = DefaultTracingEndpoint
	}
	if tc.ServiceName == "" {
		tc.ServiceName = DefaultTracingService
	}
	if tc.OTLP.Timeout == 0 {
		tc.OTLP.Timeout = DefaultOTLPTimeout
	}
}
