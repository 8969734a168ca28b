package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"kanjize-hq/kanjize/pkg/cli"
	"kanjize-hq/kanjize/pkg/config"
)

var validateFlags struct {
	print bool
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Load and validate a configuration file, including KANJIZE_* environment
overrides, and report every invalid field.

Examples:
  kanjize validate --config kanjize.yaml

  # Show the effective configuration after defaults and overrides
  kanjize validate --config kanjize.yaml --print`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateFlags.print, "print", false, "print the effective configuration as YAML")
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		configErrs := cli.ConfigErrorsFrom(err)
		for _, ce := range configErrs {
			fmt.Fprintf(out, "✗ %s: %s\n", ce.Field, ce.Message)
		}
		return fmt.Errorf("%s: %d configuration error(s)", cfgFile, len(configErrs))
	}

	fmt.Fprintf(out, "✓ Configuration valid: %s\n", cfgFile)

	if validateFlags.print {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return cli.NewCommandError("validate", err)
		}
		return enc.Close()
	}
	return nil
}
