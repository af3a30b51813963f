package main

import (
	"encoding/hex"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/benchtimer/pkg/units"
)

var (
	unitsEncodingFlag string
	unitsMatchFlag    string
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the known reporting units",
	Long: `List every period with a unit suffix, its ratio of seconds and the
bytes of the suffix in the chosen encoding.

Any other ratio is accepted by --unit and is reported without a suffix.
--match keeps only labels matching a glob such as "*s" or "{m,u,n}s".`,
	Args: cobra.NoArgs,
	RunE: runUnits,
}

func init() {
	rootCmd.AddCommand(unitsCmd)

	unitsCmd.Flags().StringVar(
		&unitsEncodingFlag,
		"encoding",
		"utf8",
		"Encoding whose label bytes are shown",
	)
	unitsCmd.Flags().StringVar(&unitsMatchFlag, "match", "", "Glob the unit labels must match")
}

func runUnits(cmd *cobra.Command, _ []string) error {
	enc, err := units.ParseEncoding(unitsEncodingFlag)
	if err != nil {
		return err
	}

	if unitsMatchFlag != "" && !doublestar.ValidatePattern(unitsMatchFlag) {
		return errors.Wrapf(doublestar.ErrBadPattern, "--match %q", unitsMatchFlag)
	}

	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
	)

	table.Header([]string{"Label", "Seconds", "Bytes (" + enc.String() + ")"})

	for _, e := range units.Entries() {
		if unitsMatchFlag != "" && !doublestar.MatchUnvalidated(unitsMatchFlag, e.Label) {
			continue
		}

		row := []string{e.Label, e.Period.String(), spacedHex(units.LabelFor(e.Period, enc))}
		if err := table.Append(row); err != nil {
			return errors.Wrap(err, "building units table")
		}
	}

	if err := table.Render(); err != nil {
		return errors.Wrap(err, "rendering units table")
	}

	return nil
}

func spacedHex(b []byte) string {
	parts := make([]string, len(b))
	for i := range b {
		parts[i] = hex.EncodeToString(b[i : i+1])
	}

	return strings.Join(parts, " ")
}
