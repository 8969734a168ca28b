package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"kanjize-hq/kanjize/pkg/cli"
	"kanjize-hq/kanjize/pkg/kanjize"
)

// Conversion directions for --to.
const (
	directionAuto   = "auto"
	directionKanji  = "kanji"
	directionNumber = "number"
)

var convertFlags struct {
	file     string
	to       string
	exact    bool
	output   string
	progress bool
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a file of numbers or numerals line by line",
	Long: `Convert every non-blank line of a file.

With --to auto (the default) lines that are decimal integers are rendered as
kanji and everything else is parsed as a numeral. Lines that fail to convert
are reported on stderr and in the output; the remaining lines are still
converted and the command exits non-zero at the end.

Rendering uses the kanjize section of the configuration file.

Examples:
  # Render a list of numbers
  kanjize convert --file amounts.txt --to kanji

  # Parse numerals from stdin into CSV
  cat numerals.txt | kanjize convert --to number --output csv`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertFlags.file, "file", "f", "-", "input file (- for stdin)")
	convertCmd.Flags().StringVar(&convertFlags.to, "to", directionAuto, "conversion direction: auto, kanji, number")
	convertCmd.Flags().BoolVar(&convertFlags.exact, "exact", false, "print non-integral parsed values as a/b")
	convertCmd.Flags().StringVarP(&convertFlags.output, "output", "o", "text", "output format: text, json, csv")
	convertCmd.Flags().BoolVar(&convertFlags.progress, "progress", true, "show progress on stderr")
}

func runConvert(cmd *cobra.Command, args []string) error {
	switch convertFlags.to {
	case directionAuto, directionKanji, directionNumber:
	default:
		return fmt.Errorf("invalid --to %q (expected auto, kanji or number)", convertFlags.to)
	}
	if _, err := cli.ParseOutputFormat(convertFlags.output); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conf, err := cfg.Kanjize.Configuration()
	if err != nil {
		return cli.NewConfigError("kanjize", err.Error())
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	lines, err := readLines(cmd.InOrStdin(), convertFlags.file)
	if err != nil {
		return cli.NewCommandError("convert", err)
	}
	logger.Debug("converting", "file", convertFlags.file, "lines", len(lines), "direction", convertFlags.to)

	ctx, stop := cli.SetupSignalHandler(commandContext(cmd))
	defer stop()

	var progress cli.ProgressReporter
	if convertFlags.progress {
		progress = cli.NewProgressReporter(cmd.ErrOrStderr())
		progress.Start(int64(len(lines)))
	}

	rows, err := convertLines(ctx, lines, conf, progress)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return cli.NewCommandError("convert", err)
	}

	return writeRows(cmd.OutOrStdout(), convertFlags.output, rows)
}

// inputLine is a non-blank input line with its 1-based line number.
type inputLine struct {
	number int
	text   string
}

func readLines(stdin io.Reader, path string) ([]inputLine, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []inputLine
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		lines = append(lines, inputLine{number: n, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

// convertLines converts every line, reporting failures to progress without
// stopping. It returns early only when ctx is cancelled.
func convertLines(ctx context.Context, lines []inputLine, conf kanjize.Configuration, progress cli.ProgressReporter) ([]cli.Conversion, error) {
	rows := make([]cli.Conversion, 0, len(lines))
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("interrupted after %d of %d lines: %w", i, len(lines), err)
		}

		var row cli.Conversion
		if toKanji(line.text) {
			row = formatOne(line.text, conf)
		} else {
			row = parseOne(line.text, convertFlags.exact)
		}
		rows = append(rows, row)

		if progress != nil {
			if row.Failed() {
				progress.Error(cli.NewLineError(line.number, line.text, errors.New(row.Error)))
			}
			progress.Update(int64(i + 1))
		}
	}
	return rows, nil
}

func toKanji(text string) bool {
	switch convertFlags.to {
	case directionKanji:
		return true
	case directionNumber:
		return false
	default:
		_, err := parseDecimal(text)
		return err == nil
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
