package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"mercator-hq/marketingspec/pkg/cli"
	"mercator-hq/marketingspec/pkg/gitsource"
	"mercator-hq/marketingspec/pkg/telemetry/logging"
	"mercator-hq/marketingspec/pkg/telemetry/metrics"
	"mercator-hq/marketingspec/pkg/telemetry/tracing"
)

var validateFlags struct {
	strict      bool
	format      string
	metricsFile string
	rev         string
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a marketing specification",
	Long: `Parse a marketing specification and run every validation rule against it.

The file is read as JSON when it ends in .json and as YAML otherwise. Parsing
stops at the first structural problem (missing required field, wrong type,
bad syntax) and reports its code, location and fix. A document that parses
is checked by the full rule catalogue (see 'mspec rules') and the report
lists errors, warnings and, with --verbose, informational notes.

The command exits non-zero when the document does not parse, when any
error is found, or when --strict is set and any warning is found.

Examples:
  # Validate a specification
  mspec validate specs/marketing-spec.yaml

  # Treat warnings as failures
  mspec validate specs/marketing-spec.yaml --strict

  # JSON output for CI/CD
  mspec validate specs/marketing-spec.yaml --format json

  # Validate the version committed two commits ago
  mspec validate specs/marketing-spec.yaml --rev HEAD~2

  # Export metrics for the node-exporter textfile collector
  mspec validate specs/marketing-spec.yaml --metrics-file /var/lib/node_exporter/mspec.prom`,
	Args: cobra.ExactArgs(1),
	RunE: validateSpec,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateFlags.strict, "strict", false, "treat warnings as errors (also validation.strict)")
	validateCmd.Flags().StringVar(&validateFlags.format, "format", "", "output format: text, json (default validation.format)")
	_ = validateCmd.RegisterFlagCompletionFunc("format", completeFormats)
	validateCmd.Flags().StringVar(&validateFlags.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	validateCmd.Flags().StringVar(&validateFlags.rev, "rev", "", "validate the file as committed at this git revision")
}

func validateSpec(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	path := args[0]

	formatName := validateFlags.format
	if formatName == "" {
		formatName = cfg.Validation.Format
	}
	format, err := cli.ParseOutputFormat(formatName)
	if err != nil {
		return err
	}
	strict := validateFlags.strict || cfg.Validation.Strict

	mc := metricsConfig(cfg, validateFlags.metricsFile, false)
	collector := metrics.NewCollector(mc, nil)
	checker := newSpecChecker(cfg, collector, strict)

	ctx := logging.WithSpecFile(logging.StartRun(commandContext(cmd)), path)
	log := currentLogger()

	tracer, err := newTracer(cmd, cfg)
	if err != nil {
		return cli.NewCommandError("validate", err)
	}
	defer shutdownTracer(tracer, log)
	checker.tracer = tracer

	ctx, span := tracer.Start(ctx, "validate", trace.WithAttributes(attribute.String(tracing.AttrSpecFile, path)))
	defer span.End()

	var outcome checkOutcome
	if validateFlags.rev != "" {
		repo, err := gitsource.Open(path)
		if err != nil {
			return cli.NewCommandError("validate", err)
		}
		data, commit, err := repo.ReadFile(validateFlags.rev, path)
		if err != nil {
			return cli.NewCommandError("validate", err)
		}
		log.DebugContext(ctx, "read committed specification", "rev", validateFlags.rev, "commit", commit.SHA)
		span.SetAttributes(attribute.String(tracing.AttrGitCommit, commit.SHA))
		outcome = checker.checkBytes(ctx, path+"@"+commit.ShortSHA(), data, time.Time{})
	} else {
		outcome = checker.check(ctx, path)
	}
	tracing.SetStatus(span, outcome.failure())
	log.DebugContext(ctx, "validation finished", outcome.logAttrs()...)

	if err := outcome.render(cmd.OutOrStdout(), format); err != nil {
		return cli.NewCommandError("validate", fmt.Errorf("failed to write report: %w", err))
	}

	if mc.Textfile != "" {
		if err := collector.WriteTextfile(mc.Textfile); err != nil {
			return cli.NewCommandError("validate", err)
		}
		log.DebugContext(ctx, "metrics written", "path", mc.Textfile)
	}

	if !outcome.passed() {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
