package main

import (
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/benchtimer/internal/schema"
)

var (
	schemaOutput  string
	schemaCompact bool
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the configuration file",
	Long: `Print the JSON Schema (Draft 2020-12) that describes benchtimer TOML files.
Files written by "benchtimer init" reference it through a #:schema comment.

  benchtimer schema                     # indented, to stdout
  benchtimer schema -o schema.json      # to a file
  benchtimer schema --compact           # one line`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "Write schema to file instead of stdout")
	schemaCmd.Flags().BoolVar(&schemaCompact, "compact", false, "Output compact JSON without indentation")
}

func runSchema(cmd *cobra.Command, _ []string) error {
	if schemaOutput != "" {
		return schema.WriteFile(schemaOutput, !schemaCompact)
	}

	return schema.Encode(cmd.OutOrStdout(), !schemaCompact)
}
