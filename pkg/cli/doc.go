/*
Package cli provides the helpers shared by the mspec commands.

Validation reports are built from a validator.Result and rendered as text
or JSON:

	report := cli.NewReport(path, res, strict, verbose)
	if err := cli.Render(os.Stdout, cli.FormatJSON, report); err != nil {
		return err
	}

Commands return a CommandError for failures and an ExitError when the
outcome has already been printed and only the exit status remains:

	os.Exit(cli.ExitCode(err))

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
