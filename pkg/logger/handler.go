package logger

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// timestampLayout is RFC 3339 with milliseconds, in local time.
const timestampLayout = "2006-01-02T15:04:05.000-07:00"

// LineHandler is a slog.Handler writing one logfmt-style line per record:
//
//	2006-01-02T15:04:05.000-07:00 LEVEL msg key=value group.key="quoted value"
type LineHandler struct {
	out    io.Writer
	mu     *sync.Mutex
	min    slog.Level
	prefix string // "group." for attrs added after WithGroup
	preset []byte // pre-rendered attrs from WithAttrs
}

// NewLineHandler creates a handler writing records at or above level to w.
func NewLineHandler(w io.Writer, level Level) *LineHandler {
	return &LineHandler{out: w, mu: &sync.Mutex{}, min: level.ToSlogLevel()}
}

// Enabled reports whether records at level are written.
func (h *LineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min
}

// Handle renders r as a single line.
func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var line strings.Builder

	line.WriteString(ts.Local().Format(timestampLayout))
	line.WriteByte(' ')
	line.WriteString(r.Level.String())
	line.WriteByte(' ')
	line.WriteString(r.Message)
	line.Write(h.preset)

	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&line, h.prefix, a)

		return true
	})

	line.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.out, line.String())

	return err
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *LineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder

	for _, a := range attrs {
		writeAttr(&b, h.prefix, a)
	}

	next := *h
	next.preset = append(append([]byte(nil), h.preset...), b.String()...)

	return &next
}

// WithGroup returns a handler that qualifies later keys with name.
func (h *LineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	next := *h
	next.prefix = h.prefix + name + "."

	return &next
}

// writeAttr appends " prefix.key=value". Group values are flattened into
// dotted keys; empty attrs are skipped.
func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		inner := prefix
		if a.Key != "" {
			inner += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			writeAttr(b, inner, ga)
		}

		return
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')

	val := a.Value.String()
	if val == "" || strings.ContainsAny(val, " \t\r\n\"=\\") {
		val = strconv.Quote(val)
	}

	b.WriteString(val)
}
