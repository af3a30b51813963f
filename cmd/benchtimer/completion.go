package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate a shell completion script for benchtimer.

  $ source <(benchtimer completion bash)
  $ benchtimer completion zsh > "${fpath[1]}/_benchtimer"
  $ benchtimer completion fish | source
  PS> benchtimer completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		var err error

		switch args[0] {
		case "bash":
			err = rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			err = rootCmd.GenZshCompletion(out)
		case "fish":
			err = rootCmd.GenFishCompletion(out, true)
		case "powershell":
			err = rootCmd.GenPowerShellCompletionWithDesc(out)
		}

		return errors.Wrap(err, "failed to generate completion script")
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
