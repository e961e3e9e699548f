package main

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"mercator-hq/marketingspec/pkg/cli"
	"mercator-hq/marketingspec/pkg/spec/validator"
)

var rulesFlags struct {
	entity string
	format string
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the validation rules",
	Long: `List every validation rule in execution order with its code, the entity it
applies to, its severity and what it checks.

Examples:
  mspec rules
  mspec rules --entity campaign
  mspec rules --format json`,
	Args: cobra.NoArgs,
	RunE: listRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesCmd.Flags().StringVar(&rulesFlags.entity, "entity", "", "only rules for this entity type")
	rulesCmd.Flags().StringVar(&rulesFlags.format, "format", "text", "output format: text, json")
	_ = rulesCmd.RegisterFlagCompletionFunc("entity", completeEntities)
	_ = rulesCmd.RegisterFlagCompletionFunc("format", completeFormats)
}

// ruleEntities lists the entity types of the rule catalogue in catalogue
// order.
func ruleEntities() []string {
	var entities []string
	for _, r := range validator.Catalogue() {
		if !slices.Contains(entities, r.Entity) {
			entities = append(entities, r.Entity)
		}
	}
	return entities
}

func listRules(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(rulesFlags.format)
	if err != nil {
		return err
	}

	rules := validator.Catalogue()
	if rulesFlags.entity != "" {
		filtered := rules[:0]
		for _, r := range rules {
			if strings.EqualFold(r.Entity, rulesFlags.entity) {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) == 0 {
			return cli.NewConfigError("entity", fmt.Sprintf("no rules for entity %q", rulesFlags.entity))
		}
		rules = filtered
	}

	out := cmd.OutOrStdout()
	if format == cli.FormatJSON {
		return cli.WriteJSON(out, rules)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tENTITY\tSEVERITY\tCHECK")
	for _, r := range rules {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Code, r.Entity, r.Severity, r.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d rules\n", len(rules))
	return nil
}
