// Package logger is the leveled key-value logger used by benchtimer. Records
// go through log/slog and are rendered by LineHandler.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
)

// FileMode is the mode of newly created log files.
const FileMode = 0o600

// Logger is what the rest of benchtimer logs through. keysAndValues
// alternate between string keys and arbitrary values.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// With returns a Logger that adds keysAndValues to every record.
	With(keysAndValues ...any) Logger
}

// SlogAdapter is a Logger backed by a *slog.Logger. It may own the file it
// writes to.
type SlogAdapter struct {
	log    *slog.Logger
	closer io.Closer
}

// New returns a Logger writing lines at or above level to w.
func New(w io.Writer, level Level) *SlogAdapter {
	return &SlogAdapter{log: slog.New(NewLineHandler(w, level))}
}

// NewFileLogger returns a Logger appending to path. Close releases the file.
func NewFileLogger(path string, level Level) (*SlogAdapter, error) {
	//nolint:gosec // path comes from the user's own flag or config
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, FileMode)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", path)
	}

	return &SlogAdapter{log: slog.New(NewLineHandler(f, level)), closer: f}, nil
}

func (l *SlogAdapter) Debug(msg string, keysAndValues ...any) { l.log.Debug(msg, keysAndValues...) }

func (l *SlogAdapter) Info(msg string, keysAndValues ...any) { l.log.Info(msg, keysAndValues...) }

func (l *SlogAdapter) Error(msg string, keysAndValues ...any) { l.log.Error(msg, keysAndValues...) }

//nolint:ireturn // Logger is the chaining type
func (l *SlogAdapter) With(keysAndValues ...any) Logger {
	return &SlogAdapter{log: l.log.With(keysAndValues...), closer: l.closer}
}

// Close closes the log file, if the logger owns one.
func (l *SlogAdapter) Close() error {
	if l.closer == nil {
		return nil
	}

	return l.closer.Close()
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

// NewNoOpLogger returns a Logger that discards everything.
func NewNoOpLogger() *NoOpLogger { return &NoOpLogger{} }

func (*NoOpLogger) Debug(string, ...any) {}

func (*NoOpLogger) Info(string, ...any) {}

func (*NoOpLogger) Error(string, ...any) {}

//nolint:ireturn // Logger is the chaining type
func (n *NoOpLogger) With(...any) Logger { return n }
