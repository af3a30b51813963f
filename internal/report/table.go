package report

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/cockroachdb/errors"
	"github.com/hako/durafmt"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/smykla-skalski/benchtimer/internal/bench"
	"github.com/smykla-skalski/benchtimer/internal/color"
)

const (
	// maxCommandWidth caps the command column; longer lines are truncated.
	maxCommandWidth = 48

	wallDisplayUnits = 2
)

// TableRenderer prints a rounded table of all results, preceded by a host
// summary when one is available.
type TableRenderer struct {
	opts Options
}

// Render writes the table.
func (t *TableRenderer) Render(w io.Writer, r *Report) error {
	theme := t.opts.Theme

	var buf bytes.Buffer

	if summary := r.Host.Summary(); summary != "" {
		buf.WriteString(theme.Header.Render("Host:") + " " + summary + "\n")
	}

	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
		tablewriter.WithConfig(tablewriter.NewConfigBuilder().
			WithTrimSpace(tw.Off).
			Build()),
	)

	table.Header([]string{"Command", "Runs", "Mean", "Wall"})

	means := make([]string, len(r.Results))
	meanWidth := 0

	for i, res := range r.Results {
		means[i] = theme.Value.Render(res.Mean) + theme.Unit.Render(res.Unit)
		meanWidth = max(meanWidth, visibleWidth(means[i]))
	}

	for i, res := range r.Results {
		row := []string{
			theme.Command.Render(runewidth.Truncate(res.Command, maxCommandWidth, "…")),
			strconv.Itoa(res.Runs),
			padLeft(means[i], meanWidth),
			FormatWall(res),
		}

		if err := table.Append(row); err != nil {
			return errors.Wrap(err, "building table")
		}
	}

	if err := table.Render(); err != nil {
		return errors.Wrap(err, "rendering table")
	}

	out := dimBorders(strings.TrimRight(buf.String(), "\n"), theme) + "\n"

	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, "writing table report")
	}

	return nil
}

// FormatWall renders the total wall time of a benchmark, e.g. "1 second 250 milliseconds".
func FormatWall(res *bench.Result) string {
	return durafmt.Parse(res.Wall).LimitFirstN(wallDisplayUnits).String()
}

func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// padLeft right-aligns s to display width w, ignoring ANSI codes.
func padLeft(s string, w int) string {
	visible := visibleWidth(s)
	if visible >= w {
		return s
	}

	return strings.Repeat(" ", w-visible) + s
}

// dimBorders applies the muted theme style to the box-drawing characters.
func dimBorders(s string, theme color.Theme) string {
	for _, ch := range []string{
		"╭", "╮", "╰", "╯", "│", "─", "┬", "┴", "├", "┤", "┼",
	} {
		s = strings.ReplaceAll(s, ch, theme.Muted.Render(ch))
	}

	return s
}
