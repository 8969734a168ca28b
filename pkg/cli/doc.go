/*
Package cli provides command-line helpers for the kanjize command.

The cli package includes output formatters, the batch progress reporter, error
types and signal handling shared by the kanjize subcommands.

Output Formatting:

Conversion results are written in text, JSON or CSV:

	formatter, err := cli.NewFormatterFor("csv")
	if err != nil {
		return err
	}
	rows := []cli.Conversion{{Input: "2025", Output: "二千二十五"}}
	if err := formatter.FormatTo(os.Stdout, rows); err != nil {
		return err
	}

Progress Reporting:

Batch conversion reports progress on stderr, counting failed lines:

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(int64(len(lines)))
	for i, line := range lines {
		if err := convert(line); err != nil {
			progress.Error(cli.NewLineError(i+1, line, err))
		}
		progress.Update(int64(i + 1))
	}
	progress.Finish()

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
