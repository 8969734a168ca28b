package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for kanjize.

To load completions:

Bash:
  $ source <(kanjize completion bash)
  # To load permanently:
  $ kanjize completion bash > /etc/bash_completion.d/kanjize

Zsh:
  $ kanjize completion zsh > "${fpath[1]}/_kanjize"
  $ compinit

Fish:
  $ kanjize completion fish | source
  # To load permanently:
  $ kanjize completion fish > ~/.config/fish/completions/kanjize.fish

PowerShell:
  PS> kanjize completion powershell | Out-String | Invoke-Expression
`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
