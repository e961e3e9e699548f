// Package config provides configuration management for mspec.
//
// Configuration is read from a YAML file, completed with defaults,
// overridden from the environment and then validated:
//
//	cfg, err := config.LoadConfigWithEnvOverrides(".mspec.yaml")
//
// The CLI uses Load, which treats a missing file as "use defaults".
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention MSPEC_SECTION_FIELD:
//
//   - MSPEC_VALIDATION_STRICT overrides validation.strict
//   - MSPEC_WATCH_SCHEDULE overrides watch.schedule
//   - MSPEC_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// # Example Configuration
//
//	validation:
//	  strict: false
//	  format: text
//	  max_file_size: 10485760
//	watch:
//	  debounce: 200ms
//	  schedule: "0 8 * * *"
//	  extensions: [".yaml", ".yml", ".json"]
//	scaffold:
//	  default_template: default
//	telemetry:
//	  logging:
//	    level: info
//	    format: text
//	  metrics:
//	    enabled: true
//	    textfile: /var/lib/node_exporter/mspec.prom
//
// # Singleton
//
// Initialize stores a process-wide Config that GetConfig returns.
// Library code should take a *Config argument instead.
package config
