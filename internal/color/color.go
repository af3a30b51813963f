// Package color decides whether report output is styled and holds the styles.
package color

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type lookupFunc func(key string) (string, bool)

// Allowed reports whether the environment permits color. --no-color, NO_COLOR
// with any value (https://no-color.org), CLICOLOR=0 and TERM=dumb turn it off.
func Allowed(noColorFlag bool) bool {
	return allowed(noColorFlag, os.LookupEnv)
}

func allowed(noColorFlag bool, lookup lookupFunc) bool {
	if noColorFlag {
		return false
	}

	if _, set := lookup("NO_COLOR"); set {
		return false
	}

	if v, _ := lookup("CLICOLOR"); v == "0" {
		return false
	}

	term, _ := lookup("TERM")

	return term != "dumb"
}

// Forced reports whether FORCE_COLOR asks for color on non-terminals.
func Forced() bool {
	return forced(os.LookupEnv)
}

func forced(lookup lookupFunc) bool {
	v, set := lookup("FORCE_COLOR")

	return set && v != "" && v != "0"
}

// IsTerminal returns true if w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// Enabled decides styling for output written to w: the environment must
// allow color, and w must be a terminal unless FORCE_COLOR is set.
func Enabled(w io.Writer, noColorFlag bool) bool {
	return Allowed(noColorFlag) && (Forced() || IsTerminal(w))
}

// Theme holds the styles used by table reports. The zero Theme renders text
// unchanged.
type Theme struct {
	Header  lipgloss.Style
	Command lipgloss.Style
	Value   lipgloss.Style
	Unit    lipgloss.Style
	Fail    lipgloss.Style
	Muted   lipgloss.Style
}

// NewTheme returns the styled theme, or the zero Theme when enabled is false.
func NewTheme(enabled bool) Theme {
	if !enabled {
		return Theme{}
	}

	ansi := func(code string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}

	return Theme{
		Header:  ansi("14").Bold(true),
		Command: lipgloss.NewStyle().Bold(true),
		Value:   ansi("10"),
		Unit:    ansi("12"),
		Fail:    ansi("9").Bold(true),
		Muted:   ansi("8"),
	}
}
