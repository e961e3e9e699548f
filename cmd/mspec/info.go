package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"mercator-hq/marketingspec/pkg/scaffold"
	"mercator-hq/marketingspec/pkg/spec/validator"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show toolkit information",
	Long:  `Show the toolkit version, the entity types it understands, the number of validation rules, the available templates and the active settings.`,
	Args:  cobra.NoArgs,
	Run:   showInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func showInfo(cmd *cobra.Command, args []string) {
	cfg := currentConfig()
	rules := validator.Catalogue()
	entities := ruleEntities()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mspec %s\n", Version)
	fmt.Fprintf(out, "Marketing Operations Specification Toolkit\n\n")
	fmt.Fprintf(out, "Entities:          %s\n", strings.Join(entities, ", "))
	fmt.Fprintf(out, "Validation Rules:  %d\n", len(rules))
	fmt.Fprintf(out, "Templates:         %s\n", strings.Join(scaffold.Templates(), ", "))

	fmt.Fprintf(out, "\nSettings (%s):\n", cfgFile)
	fmt.Fprintf(out, "  validation.strict:         %t\n", cfg.Validation.Strict)
	fmt.Fprintf(out, "  validation.format:         %s\n", cfg.Validation.Format)
	fmt.Fprintf(out, "  watch.debounce:            %s\n", cfg.Watch.Debounce)
	if cfg.Watch.Schedule != "" {
		fmt.Fprintf(out, "  watch.schedule:            %s\n", cfg.Watch.Schedule)
	}
	fmt.Fprintf(out, "  scaffold.default_template: %s\n", cfg.Scaffold.DefaultTemplate)

	fmt.Fprintf(out, "\nCommands:\n")
	for _, c := range rootCmd.Commands() {
		if c.Hidden || c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		fmt.Fprintf(out, "  %-10s %s\n", c.Name(), c.Short)
	}
}
