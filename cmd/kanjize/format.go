package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"kanjize-hq/kanjize/pkg/cli"
	"kanjize-hq/kanjize/pkg/config"
	"kanjize-hq/kanjize/pkg/kanjize"
)

var formatFlags struct {
	style            string
	zero             string
	daiji            bool
	compactThousands bool
	output           string
}

var formatCmd = &cobra.Command{
	Use:   "format <number>...",
	Short: "Render integers as kanji numerals",
	Long: `Render each integer argument as a kanji numeral.

Style and glyph options default to the kanjize section of the configuration
file. Digit separators "_" and "," are ignored. Negative numbers must follow
"--" so they are not read as flags.

Examples:
  # All-kanji style
  kanjize format 2025
  二千二十五

  # Mixed style, as used in print
  kanjize format --style mixed 58076099 5000
  5807万6099
  5千

  # Formal glyphs
  kanjize format --daiji 12000
  壱萬弐阡

  # Negative numbers
  kanjize format -- -300`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringVarP(&formatFlags.style, "style", "s", "", "output style: all, mixed, flat (default from config)")
	formatCmd.Flags().StringVar(&formatFlags.zero, "zero", "", "zero glyph: kanji (零), sign (〇) (default from style)")
	formatCmd.Flags().BoolVar(&formatFlags.daiji, "daiji", false, "use formal daiji glyphs")
	formatCmd.Flags().BoolVar(&formatFlags.compactThousands, "compact-thousands", config.DefaultCompactThousands, "render exact thousands as 5千 in mixed style")
	formatCmd.Flags().StringVarP(&formatFlags.output, "output", "o", "text", "output format: text, json, csv")
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	conf, err := formatConfiguration(cmd, cfg.Kanjize)
	if err != nil {
		return cli.NewConfigError("kanjize", err.Error())
	}

	rows := make([]cli.Conversion, 0, len(args))
	for _, arg := range args {
		rows = append(rows, formatOne(arg, conf))
	}
	return writeRows(cmd.OutOrStdout(), formatFlags.output, rows)
}

// formatConfiguration overlays the flags the user set on the configured
// kanjize section.
func formatConfiguration(cmd *cobra.Command, k config.KanjizeConfig) (kanjize.Configuration, error) {
	flags := cmd.Flags()
	if flags.Changed("style") {
		k.Style = formatFlags.style
	}
	if flags.Changed("zero") {
		k.Zero = formatFlags.zero
	}
	if flags.Changed("daiji") {
		k.UseDaiji = formatFlags.daiji
	}
	if flags.Changed("compact-thousands") {
		compact := formatFlags.compactThousands
		k.CompactThousands = &compact
	}
	return k.Configuration()
}

func formatOne(input string, conf kanjize.Configuration) cli.Conversion {
	row := cli.Conversion{Input: input}

	n, err := parseDecimal(input)
	if err != nil {
		row.Error = err.Error()
		return row
	}
	kanji, err := kanjize.NumberToKanji(n, conf)
	if err != nil {
		row.Error = err.Error()
		return row
	}
	row.Output = kanji
	return row
}

var digitSeparators = strings.NewReplacer("_", "", ",", "")

// parseDecimal parses a base-10 integer, ignoring digit separators.
func parseDecimal(s string) (*big.Int, error) {
	clean := digitSeparators.Replace(strings.TrimSpace(s))
	n, ok := new(big.Int).SetString(clean, 10)
	if !ok {
		return nil, fmt.Errorf("%q is not a decimal integer", s)
	}
	return n, nil
}
