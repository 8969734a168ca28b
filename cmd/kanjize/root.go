package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"kanjize-hq/kanjize/pkg/cli"
	"kanjize-hq/kanjize/pkg/config"
	"kanjize-hq/kanjize/pkg/telemetry/logging"
)

// defaultConfigFile is read when --config is not given. Unlike an explicit
// path it may be missing, in which case the built-in defaults apply.
const defaultConfigFile = "kanjize.yaml"

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kanjize",
	Short: "Convert between integers and Japanese kanji numerals",
	Long: `kanjize converts integers to Japanese kanji numerals and back.

Numbers up to 10^72-1 are rendered with the big units 万, 億, 兆 ... 無量大数
in one of three styles:
  - all:   二千二十五, 五千八百七万六千九十九
  - mixed: 2025, 5807万6099
  - flat:  二〇二五

Parsing accepts all three styles, formal daiji glyphs (壱, 弐, 拾, 萬),
full-width digits and decimal coefficients such as 1.5万.

Settings are read from kanjize.yaml (or --config) and KANJIZE_* environment
variables.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// loadConfig loads the configuration file with environment overrides and
// installs it as the global configuration.
func loadConfig() (*config.Config, error) {
	optional := cfgFile == defaultConfigFile
	cfg, err := config.LoadOrDefault(cfgFile, optional)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NewConfigError("file", fmt.Sprintf("configuration file %s not found", cfgFile))
		}
		return nil, cli.NewConfigError("file", fmt.Sprintf("failed to load config: %v", err))
	}
	config.SetConfig(cfg)
	return cfg, nil
}

// newLogger builds the command logger from the telemetry.logging section.
// --verbose lowers the level to debug.
func newLogger(cfg *config.Config, w io.Writer) (*logging.Logger, error) {
	logger, err := logging.New(logging.FromConfig(cfg.Telemetry.Logging, w))
	if err != nil {
		return nil, cli.NewConfigError("telemetry.logging", err.Error())
	}
	if verbose {
		if err := logger.SetLevel("debug"); err != nil {
			return nil, err
		}
	}
	return logger, nil
}

// writeRows prints conversion rows in the requested format and fails when
// any row was rejected.
func writeRows(w io.Writer, output string, rows []cli.Conversion) error {
	formatter, err := cli.NewFormatterFor(output)
	if err != nil {
		return err
	}
	if err := formatter.FormatTo(w, rows); err != nil {
		return err
	}

	failed := 0
	for _, row := range rows {
		if row.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be converted", failed, len(rows))
	}
	return nil
}
