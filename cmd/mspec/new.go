package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"mercator-hq/marketingspec/pkg/cli"
	"mercator-hq/marketingspec/pkg/scaffold"
)

var newFlags struct {
	output   string
	template string
	force    bool
	dryRun   bool
	format   string
}

var newCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Create a new marketing project directory",
	Long: `Create a project directory holding a README, a project constitution, a
specs folder with a starter specification, and a .gitignore.

The directory defaults to a slug of the project name. An existing,
non-empty directory is left untouched unless --force is given.

Examples:
  # Create ./acme-analytics
  mspec new "Acme Analytics"

  # Pick the directory and template
  mspec new "Acme Analytics" --output ./marketing --template full

  # Show what would be written
  mspec new "Acme Analytics" --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: newProject,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newFlags.output, "output", "o", "", "output directory (default: slug of the project name)")
	newCmd.Flags().StringVarP(&newFlags.template, "template", "t", "", "spec template: "+strings.Join(scaffold.Templates(), ", ")+" (default scaffold.default_template)")
	newCmd.Flags().BoolVarP(&newFlags.force, "force", "f", false, "write into a non-empty directory")
	newCmd.Flags().BoolVar(&newFlags.dryRun, "dry-run", false, "list the files without writing them")
	newCmd.Flags().StringVar(&newFlags.format, "format", "text", "output format: text, json")
	_ = newCmd.RegisterFlagCompletionFunc("template", completeTemplates)
	_ = newCmd.RegisterFlagCompletionFunc("format", completeFormats)
}

func newProject(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return cli.NewConfigError("project-name", "must not be empty")
	}
	format, err := cli.ParseOutputFormat(newFlags.format)
	if err != nil {
		return err
	}

	dir := newFlags.output
	if dir == "" {
		dir = scaffold.Slugify(name)
	}
	tmpl := newFlags.template
	if tmpl == "" {
		tmpl = currentConfig().Scaffold.DefaultTemplate
	}

	project, err := scaffold.NewGenerator(Version).Generate(name, dir, tmpl, newFlags.force, newFlags.dryRun)
	if err != nil {
		if errors.Is(err, scaffold.ErrDirNotEmpty) {
			return cli.NewCommandError("new", fmt.Errorf("%w (use --force to write anyway)", err))
		}
		return cli.NewCommandError("new", err)
	}
	currentLogger().Debug("project generated", "dir", project.Dir, "files", len(project.Files), "dry_run", project.DryRun)

	out := cmd.OutOrStdout()
	if format == cli.FormatJSON {
		return cli.WriteJSON(out, project)
	}

	if project.DryRun {
		fmt.Fprintf(out, "Would create project '%s' in %s:\n", project.Name, project.Dir)
	} else {
		fmt.Fprintf(out, "✓ Created project '%s' in %s\n", project.Name, project.Dir)
	}
	for _, f := range project.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if !project.DryRun {
		fmt.Fprintf(out, "\nNext steps:\n")
		fmt.Fprintf(out, "  1. Fill in %s/%s\n", project.Dir, scaffold.SpecFile)
		fmt.Fprintf(out, "  2. Run: mspec validate %s/%s\n", project.Dir, scaffold.SpecFile)
	}
	return nil
}
