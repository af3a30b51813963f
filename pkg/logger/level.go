package logger

import (
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidLevel is returned when a level name cannot be parsed.
var ErrInvalidLevel = errors.New("invalid log level")

// Level is the minimum severity a logger writes.
type Level int

const (
	// LevelDebug logs timer phases and every run.
	LevelDebug Level = iota

	// LevelInfo logs one line per benchmarked command.
	LevelInfo

	// LevelError logs failures only.
	LevelError
)

var levels = [...]struct {
	name string
	slog slog.Level
}{
	LevelDebug: {name: "DEBUG", slog: slog.LevelDebug},
	LevelInfo:  {name: "INFO", slog: slog.LevelInfo},
	LevelError: {name: "ERROR", slog: slog.LevelError},
}

// normalize maps out-of-range levels to LevelInfo.
func (l Level) normalize() Level {
	if l < LevelDebug || l > LevelError {
		return LevelInfo
	}

	return l
}

// String returns the upper-case level name.
func (l Level) String() string {
	return levels[l.normalize()].name
}

// ToSlogLevel returns the matching slog level.
func (l Level) ToSlogLevel() slog.Level {
	return levels[l.normalize()].slog
}

// ParseLevel parses "debug", "info" or "error" in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, errors.Wrapf(ErrInvalidLevel, "%q", s)
	}
}

// LevelFromFlags determines the log level from the verbose and trace flags.
func LevelFromFlags(verbose, trace bool) Level {
	switch {
	case trace:
		return LevelDebug
	case verbose:
		return LevelInfo
	default:
		return LevelError
	}
}
