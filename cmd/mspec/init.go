package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"mercator-hq/marketingspec/pkg/cli"
	"mercator-hq/marketingspec/pkg/scaffold"
)

var initFlags struct {
	template string
	name     string
	force    bool
}

var initCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Create a new specification from a template",
	Long: `Write a starter marketing specification to <file>.

Templates:
  minimal  project only, with the required fields
  default  project, products, a plan, a campaign, channels and a tool
  full     every entity kind with the optional fields filled in

The generated file validates without errors or warnings.

Examples:
  mspec init marketing-spec.yaml
  mspec init marketing-spec.yaml --template full --name "Acme Analytics"`,
	Args: cobra.ExactArgs(1),
	RunE: initSpec,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initFlags.template, "template", "t", "", "template: "+strings.Join(scaffold.Templates(), ", ")+" (default scaffold.default_template)")
	initCmd.Flags().StringVar(&initFlags.name, "name", "My Project", "project name written into the specification")
	initCmd.Flags().BoolVarP(&initFlags.force, "force", "f", false, "overwrite an existing file")
	_ = initCmd.RegisterFlagCompletionFunc("template", completeTemplates)
}

func initSpec(cmd *cobra.Command, args []string) error {
	path := args[0]
	tmpl := initFlags.template
	if tmpl == "" {
		tmpl = currentConfig().Scaffold.DefaultTemplate
	}

	gen := scaffold.NewGenerator(Version)
	if err := gen.WriteSpec(path, tmpl, initFlags.name, initFlags.force); err != nil {
		if errors.Is(err, scaffold.ErrFileExists) {
			return cli.NewCommandError("init", fmt.Errorf("%w (use --force to overwrite)", err))
		}
		return cli.NewCommandError("init", err)
	}
	currentLogger().Debug("specification written", "path", path, "template", tmpl)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Created '%s' from '%s' template\n", path, tmpl)
	fmt.Fprintf(out, "\nNext steps:\n")
	fmt.Fprintf(out, "  1. Edit '%s' and fill in your project details\n", path)
	fmt.Fprintf(out, "  2. Run: mspec validate %s\n", path)
	return nil
}
