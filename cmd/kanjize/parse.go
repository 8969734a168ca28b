package main

import (
	"github.com/spf13/cobra"

	"kanjize-hq/kanjize/pkg/cli"
	"kanjize-hq/kanjize/pkg/kanjize"
)

var parseFlags struct {
	exact  bool
	output string
}

var parseCmd = &cobra.Command{
	Use:   "parse <kanji>...",
	Short: "Parse kanji numerals into integers",
	Long: `Parse each argument as a kanji numeral and print its decimal value.

All output styles are accepted, as are formal daiji glyphs, full-width digits
and decimal coefficients that a unit makes integral (1.5万 is 15000).

Examples:
  kanjize parse 二千二十五 5807万6099 壱萬弐阡
  2025
  58076099
  12000

  # Print non-integral values as fractions instead of rejecting them
  kanjize parse --exact 1.5
  3/2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseFlags.exact, "exact", false, "print non-integral values as a/b instead of rejecting them")
	parseCmd.Flags().StringVarP(&parseFlags.output, "output", "o", "text", "output format: text, json, csv")
}

func runParse(cmd *cobra.Command, args []string) error {
	rows := make([]cli.Conversion, 0, len(args))
	for _, arg := range args {
		rows = append(rows, parseOne(arg, parseFlags.exact))
	}
	return writeRows(cmd.OutOrStdout(), parseFlags.output, rows)
}

func parseOne(input string, exact bool) cli.Conversion {
	row := cli.Conversion{Input: input}

	if exact {
		r, err := kanjize.KanjiToRat(input)
		if err != nil {
			row.Error = err.Error()
			return row
		}
		row.Output = r.RatString()
		return row
	}

	n, err := kanjize.KanjiToNumber(input)
	if err != nil {
		row.Error = err.Error()
		return row
	}
	row.Output = n.String()
	return row
}
