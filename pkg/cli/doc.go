/*
Package cli provides helpers shared by the textutil commands.

Status output:

	cli.Success(os.Stdout, "Configuration valid")
	cli.Warning(os.Stdout, "no provider API key configured")

Result output:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, resp); err != nil {
		return err
	}

Errors:

Config load failures are expanded with ConfigErrors and mapped to exit
code 2 by ExitCode; every other failure exits 1.

Signal Handling:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
