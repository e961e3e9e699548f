package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "watch.schedule").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d errors:\n", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&sb, "  - %s\n", err.Error())
	}
	return sb.String()
}

var (
	validFormats        = []string{"text", "json"}
	validTemplates      = []string{"minimal", "default", "full"}
	validLoggingLevels  = []string{"debug", "info", "warn", "error"}
	validLoggingFormats = []string{"json", "text", "console"}
	validSamplers       = []string{"always", "never", "ratio"}
	validExporters      = []string{"otlp", "otlphttp", "stdout"}
)

// Validate validates the entire configuration and returns a ValidationError
// if any rule fails. All field errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateValidation(&cfg.Validation)...)
	errs = append(errs, validateWatch(&cfg.Watch)...)
	errs = append(errs, validateScaffold(&cfg.Scaffold)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateValidation(cfg *ValidationConfig) []FieldError {
	var errs []FieldError

	if !slices.Contains(validFormats, cfg.Format) {
		errs = append(errs, FieldError{
			Field:   "validation.format",
			Message: fmt.Sprintf("invalid format %q, must be one of: %s", cfg.Format, strings.Join(validFormats, ", ")),
		})
	}
	if cfg.MaxFileSize <= 0 {
		errs = append(errs, FieldError{
			Field:   "validation.max_file_size",
			Message: "max file size must be positive",
		})
	}

	return errs
}

func validateWatch(cfg *WatchConfig) []FieldError {
	var errs []FieldError

	if cfg.Debounce < 0 {
		errs = append(errs, FieldError{
			Field:   "watch.debounce",
			Message: "debounce must be non-negative",
		})
	}

	// Same parser the scheduler uses, so a bad expression fails at load time.
	if cfg.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "watch.schedule",
				Message: fmt.Sprintf("invalid cron expression: %v", err),
			})
		}
	}

	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, FieldError{
				Field:   "watch.extensions",
				Message: fmt.Sprintf("extension %q must start with a dot", ext),
			})
		}
	}

	return errs
}

func validateScaffold(cfg *ScaffoldConfig) []FieldError {
	if slices.Contains(validTemplates, cfg.DefaultTemplate) {
		return nil
	}
	return []FieldError{{
		Field:   "scaffold.default_template",
		Message: fmt.Sprintf("invalid template %q, must be one of: %s", cfg.DefaultTemplate, strings.Join(validTemplates, ", ")),
	}}
}

func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	if !slices.Contains(validLoggingLevels, cfg.Logging.Level) {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid log level %q, must be one of: %s", cfg.Logging.Level, strings.Join(validLoggingLevels, ", ")),
		})
	}
	if !slices.Contains(validLoggingFormats, cfg.Logging.Format) {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid log format %q, must be one of: %s", cfg.Logging.Format, strings.Join(validLoggingFormats, ", ")),
		})
	}
	if cfg.Metrics.Namespace == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.metrics.namespace",
			Message: "namespace is required",
		})
	}

	return append(errs, validateTracing(&cfg.Tracing)...)
}

// validateTracing checks tracing settings only when tracing is enabled.
func validateTracing(cfg *TracingConfig) []FieldError {
	if !cfg.Enabled {
		return nil
	}
	var errs []FieldError

	if !slices.Contains(validSamplers, cfg.Sampler) {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.sampler",
			Message: fmt.Sprintf("invalid sampler %q, must be one of: %s", cfg.Sampler, strings.Join(validSamplers, ", ")),
		})
	}
	if cfg.SampleRatio < 0 || cfg.SampleRatio > 1 {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.sample_ratio",
			Message: fmt.Sprintf("sample ratio must be between 0.0 and 1.0, got %g", cfg.SampleRatio),
		})
	}
	if !slices.Contains(validExporters, cfg.Exporter) {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.exporter",
			Message: fmt.Sprintf("invalid exporter %q, must be one of: %s", cfg.Exporter, strings.Join(validExporters, ", ")),
		})
	}
	if cfg.Exporter != "stdout" && cfg.Endpoint == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.endpoint",
			Message: "endpoint is required for OTLP export",
		})
	}
	if cfg.OTLP.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.otlp.timeout",
			Message: "timeout must be non-negative",
		})
	}

	return errs
}
