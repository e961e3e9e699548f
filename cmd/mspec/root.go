package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"mercator-hq/marketingspec/pkg/cli"
	"mercator-hq/marketingspec/pkg/config"
	"mercator-hq/marketingspec/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	envFile string
	verbose bool

	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mspec",
	Short: "mspec - marketing specification toolkit",
	Long: `mspec checks marketing specifications for structural and semantic problems
and scaffolds new ones.

A specification is a single YAML or JSON document describing a project and
its products, marketing plans, campaigns, channels, tools, content
templates, milestones and analytics. Validation reports every problem with
a stable rule code, the offending entity and a suggested fix.

Settings are read from the --config file when it exists, then from MSPEC_*
environment variables, which may also be given in a dotenv file.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err != nil && !cli.IsSilent(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.ExitCode(err)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "mspec.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file with MSPEC_* overrides")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads configuration and builds the logger before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return cli.NewConfigError(envFile, err.Error())
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cli.NewConfigError(cfgFile, err.Error())
	}

	l, err := logging.New(logging.FromConfig(cfg.Telemetry.Logging, cmd.ErrOrStderr()))
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	config.SetConfig(cfg)
	logger = l.With(string(logging.CommandKey), cmd.Name())
	logger.Debug("configuration loaded", "path", cfgFile)
	return nil
}

// currentConfig returns the loaded configuration, or defaults when setup
// has not run.
func currentConfig() *config.Config {
	if cfg := config.GetConfig(); cfg != nil {
		return cfg
	}
	return config.NewDefaultConfig()
}

func currentLogger() *logging.Logger {
	if logger != nil {
		return logger
	}
	return logging.Nop()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
