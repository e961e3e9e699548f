package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"mercator-hq/marketingspec/pkg/config"
)

// execute calls a command's RunE with a fresh cobra.Command whose output
// is captured. Flag structs keep whatever the test assigned.
func execute(t *testing.T, ctx context.Context, run func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	if ctx != nil {
		cmd.SetContext(ctx)
	}

	err := run(cmd, args)
	return out.String(), err
}

// resetState restores package-level flags and configuration after a test.
func resetState(t *testing.T) {
	t.Helper()
	reset := func() {
		validateFlags.strict, validateFlags.format, validateFlags.metricsFile, validateFlags.rev = false, "", "", ""
		watchFlags.schedule, watchFlags.debounce, watchFlags.strict = "", 0, false
		watchFlags.format, watchFlags.metricsFile, watchFlags.metricsAddr = "", "", ""
		initFlags.template, initFlags.name, initFlags.force = "", "My Project", false
		newFlags.output, newFlags.template, newFlags.force, newFlags.dryRun, newFlags.format = "", "", false, false, "text"
		rulesFlags.entity, rulesFlags.format = "", "text"
		historyFlags.limit, historyFlags.now, historyFlags.strict, historyFlags.format = 10, false, false, ""
		verbose = false
		logger = nil
		config.SetConfig(nil)
	}
	reset()
	t.Cleanup(reset)
}
