package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smykla-skalski/benchtimer/internal/config"
)

var (
	globalFlag bool
	forceFlag  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the defaults",
	Long: `Write a configuration file populated with the default settings.

By default, creates a project-local configuration file (.benchtimer/config.toml).
Use --global or -g to create a global configuration file
($XDG_CONFIG_HOME/benchtimer/config.toml, default ~/.config/benchtimer/config.toml).
Use --force to overwrite an existing configuration file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&globalFlag, "global", "g", false, "Initialize global configuration")
	initCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing configuration file")
}

func runInit(cmd *cobra.Command, _ []string) error {
	writer, err := config.NewWriter()
	if err != nil {
		return err
	}

	target := config.TargetProject
	if globalFlag {
		target = config.TargetGlobal
	}

	path, err := writer.Write(target, config.DefaultConfig(), forceFlag)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)

	return nil
}
