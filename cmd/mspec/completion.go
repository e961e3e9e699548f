package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"mercator-hq/marketingspec/pkg/scaffold"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Print a completion script for your shell.

Besides subcommands and flags, the script completes specification paths
(only .yaml, .yml and .json files are offered), template names for
--template, entity types for rules --entity, and text/json for --format.

Load it for the current session:

  bash:        source <(mspec completion bash)
  zsh:         source <(mspec completion zsh)
  fish:        mspec completion fish | source
  powershell:  mspec completion powershell | Out-String | Invoke-Expression

To keep it, write the script where your shell picks it up, for example
/etc/bash_completion.d/mspec or ~/.config/fish/completions/mspec.fish.`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)

	for _, cmd := range []*cobra.Command{validateCmd, watchCmd, historyCmd, initCmd} {
		cmd.ValidArgsFunction = completeSpecFile
	}
}

// completeSpecFile offers specification files for the single path argument.
func completeSpecFile(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"yaml", "yml", "json"}, cobra.ShellCompDirectiveFilterFileExt
}

func completeTemplates(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return scaffold.Templates(), cobra.ShellCompDirectiveNoFileComp
}

func completeEntities(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return ruleEntities(), cobra.ShellCompDirectiveNoFileComp
}

func completeFormats(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
}
