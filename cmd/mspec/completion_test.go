package main

import (
	"bytes"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// completeArgs runs cobra's hidden completion command and returns the
// offered values and the directive line.
func completeArgs(t *testing.T, args ...string) ([]string, string) {
	t.Helper()
	resetState(t)
	origCfgFile := cfgFile
	t.Cleanup(func() {
		cfgFile = origCfgFile
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{cobra.ShellCompRequestCmd}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("completion request failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	return lines[:len(lines)-1], lines[len(lines)-1]
}

func TestCompletion_FlagValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"rules entity", []string{"rules", "--entity", ""}, ruleEntities()},
		{"init template", []string{"init", "--template", ""}, []string{"minimal", "default", "full"}},
		{"new template", []string{"new", "--template", ""}, []string{"minimal", "default", "full"}},
		{"validate format", []string{"validate", "--format", ""}, []string{"text", "json"}},
		{"history format", []string{"history", "--format", ""}, []string{"text", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, directive := completeArgs(t, tt.args...)
			if !slices.Equal(got, tt.want) {
				t.Errorf("completions = %v, want %v", got, tt.want)
			}
			if directive != ":4" {
				t.Errorf("directive = %q, want no file completion", directive)
			}
		})
	}
}

func TestCompletion_SpecFileArgument(t *testing.T) {
	got, directive := completeArgs(t, "validate", "")
	if !slices.Equal(got, []string{"yaml", "yml", "json"}) {
		t.Errorf("extensions = %v", got)
	}
	if directive != ":8" {
		t.Errorf("directive = %q, want file extension filter", directive)
	}

	if got, directive := completeArgs(t, "watch", "spec.yaml", ""); len(got) != 0 || directive != ":4" {
		t.Errorf("second argument completions = %v %s, want none", got, directive)
	}
}

func TestCompletion_Scripts(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetOut(&out)
			if err := completionCmd.RunE(cmd, []string{shell}); err != nil {
				t.Fatalf("RunE(%s) error = %v", shell, err)
			}
			if !strings.Contains(out.String(), "mspec") {
				t.Errorf("%s script does not mention mspec", shell)
			}
		})
	}
}
