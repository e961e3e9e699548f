package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"mercator-hq/marketingspec/pkg/cli"
	"mercator-hq/marketingspec/pkg/config"
	"mercator-hq/marketingspec/pkg/gitsource"
	"mercator-hq/marketingspec/pkg/telemetry/metrics"
)

var historyFlags struct {
	limit  int
	now    bool
	strict bool
	format string
}

var historyCmd = &cobra.Command{
	Use:   "history <file>",
	Short: "Validate every committed version of a specification",
	Long: `Walk the git history of a specification and validate each committed
version, newest first.

By default each version is validated as of its commit time, which shows
whether the document was sound when it was committed. With --now every
version is validated against today's date instead.

Examples:
  mspec history specs/marketing-spec.yaml
  mspec history specs/marketing-spec.yaml --limit 5 --now
  mspec history specs/marketing-spec.yaml --format json`,
	Args: cobra.ExactArgs(1),
	RunE: specHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyFlags.limit, "limit", "n", 10, "maximum number of commits (0 for all)")
	historyCmd.Flags().BoolVar(&historyFlags.now, "now", false, "validate against the current date instead of each commit's date")
	historyCmd.Flags().BoolVar(&historyFlags.strict, "strict", false, "treat warnings as errors (also validation.strict)")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "", "output format: text, json (default validation.format)")
	_ = historyCmd.RegisterFlagCompletionFunc("format", completeFormats)
}

// historyEntry is the outcome for one committed version.
type historyEntry struct {
	Commit       *gitsource.CommitInfo `json:"commit"`
	ValidatedAt  time.Time             `json:"validated_at"`
	Deleted      bool                  `json:"deleted,omitempty"`
	ParseError   string                `json:"parse_error,omitempty"`
	Valid        bool                  `json:"valid"`
	Passed       bool                  `json:"passed"`
	ErrorCount   int                   `json:"error_count"`
	WarningCount int                   `json:"warning_count"`
	SuccessRate  float64               `json:"success_rate"`
}

func (e historyEntry) result() string {
	switch {
	case e.Deleted:
		return "deleted"
	case e.ParseError != "":
		return "parse error"
	case e.Passed:
		return "pass"
	default:
		return "fail"
	}
}

func specHistory(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	path := args[0]

	formatName := historyFlags.format
	if formatName == "" {
		formatName = cfg.Validation.Format
	}
	format, err := cli.ParseOutputFormat(formatName)
	if err != nil {
		return err
	}

	repo, err := gitsource.Open(path)
	if err != nil {
		return cli.NewCommandError("history", err)
	}
	commits, err := repo.FileHistory(path, historyFlags.limit)
	if err != nil {
		return cli.NewCommandError("history", err)
	}
	if len(commits) == 0 {
		return cli.NewCommandError("history", fmt.Errorf("no commits touch %s", path))
	}

	strict := historyFlags.strict || cfg.Validation.Strict
	checker := newSpecChecker(cfg, metrics.NewCollector(&config.MetricsConfig{}, nil), strict)
	now := time.Now()

	entries := make([]historyEntry, 0, len(commits))
	for _, c := range commits {
		at := c.Timestamp
		if historyFlags.now {
			at = now
		}
		entry := historyEntry{Commit: c, ValidatedAt: at}

		data, _, err := repo.ReadFile(c.SHA, path)
		switch {
		case errors.Is(err, gitsource.ErrFileNotInRevision):
			entry.Deleted = true
		case err != nil:
			return cli.NewCommandError("history", err)
		default:
			outcome := checker.checkBytes(commandContext(cmd), path, data, at)
			if outcome.parseErr != nil {
				entry.ParseError = cli.NewParseFailure(path, outcome.parseErr).Error.Message
			} else {
				entry.Valid = outcome.report.Valid
				entry.Passed = outcome.report.Passed
				entry.ErrorCount = outcome.report.ErrorCount
				entry.WarningCount = outcome.report.WarningCount
				entry.SuccessRate = outcome.report.SuccessRate
			}
		}
		entries = append(entries, entry)
	}
	currentLogger().Debug("history validated", "path", path, "commits", len(entries))

	out := cmd.OutOrStdout()
	if format == cli.FormatJSON {
		return cli.WriteJSON(out, entries)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COMMIT\tDATE\tRESULT\tERRORS\tWARNINGS\tSUBJECT")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			e.Commit.ShortSHA(),
			e.Commit.Timestamp.Format("2006-01-02"),
			e.result(),
			e.ErrorCount,
			e.WarningCount,
			e.Commit.Subject(),
		)
	}
	return tw.Flush()
}
