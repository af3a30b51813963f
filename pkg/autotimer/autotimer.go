// Package autotimer ties a timing report to the end of a scope.
//
// A Reporter starts its timer when created and writes
// label + elapsed + unit to its sink exactly once, when Stop is first called:
//
//	r := autotimer.New[float64](os.Stderr, "load config: ", period.Milli)
//	defer r.Stop()
//
// Scope runs a function under a Reporter and guarantees the report on every
// exit path, including panics.
package autotimer

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/benchtimer/pkg/period"
	"github.com/smykla-skalski/benchtimer/pkg/timer"
	"github.com/smykla-skalski/benchtimer/pkg/units"
)

// Formatter renders the elapsed tick count.
type Formatter[R timer.Number] func(R) string

// Option configures a Reporter.
type Option func(*settings)

type settings struct {
	encoding units.Encoding
	newline  bool
	timerOps []timer.Option
}

// WithEncoding writes the report in enc instead of UTF-8.
func WithEncoding(enc units.Encoding) Option {
	return func(s *settings) {
		s.encoding = enc
	}
}

// WithNewline terminates the report with a line break.
func WithNewline() Option {
	return func(s *settings) {
		s.newline = true
	}
}

// WithClock sets the clock of the embedded timer.
func WithClock(c timer.Clock) Option {
	return func(s *settings) {
		s.timerOps = append(s.timerOps, timer.WithClock(c))
	}
}

// Reporter reports the time since its creation to a sink, once.
type Reporter[R timer.Number] struct {
	timer    *timer.Timer[R]
	sink     io.Writer
	label    string
	encoding units.Encoding
	newline  bool
	format   Formatter[R]
	reported bool
}

// New starts a Reporter. The sink is borrowed: it must stay usable until
// Stop and is never closed. New produces no output.
func New[R timer.Number](
	sink io.Writer,
	label string,
	p period.Period,
	opts ...Option,
) *Reporter[R] {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}

	return &Reporter[R]{
		timer:    timer.New[R](p, s.timerOps...),
		sink:     sink,
		label:    label,
		encoding: s.encoding,
		newline:  s.newline,
		format:   timer.FormatCount[R],
	}
}

// Default starts a float64 seconds Reporter on stdout with no label.
func Default() *Reporter[float64] {
	return New[float64](os.Stdout, "", period.Second)
}

// WithFormatter replaces the count renderer. It must be called before Stop.
func (r *Reporter[R]) WithFormatter(f Formatter[R]) *Reporter[R] {
	if f != nil {
		r.format = f
	}

	return r
}

// Stop writes the report the first time it is called and does nothing
// afterwards. Only the first call can return a write error.
func (r *Reporter[R]) Stop() error {
	if r.reported {
		return nil
	}

	elapsed := r.timer.Elapsed()
	r.reported = true

	return r.write(elapsed)
}

// Reported reports whether Stop has already written the report.
func (r *Reporter[R]) Reported() bool {
	return r.reported
}

// Label returns the label the Reporter was created with.
func (r *Reporter[R]) Label() string {
	return r.label
}

// Timer exposes the embedded timer for intermediate readings.
func (r *Reporter[R]) Timer() *timer.Timer[R] {
	return r.timer
}

func (r *Reporter[R]) write(elapsed R) error {
	head := r.label + r.format(elapsed)
	if r.encoding != units.EncodingUTF8 {
		encoded, err := r.encoding.Encode(head)
		if err != nil {
			return err
		}

		head = string(encoded)
	}

	line := make([]byte, 0, len(head)+8)
	line = append(line, head...)
	line = append(line, units.LabelFor(r.timer.Period(), r.encoding)...)

	if r.newline {
		nl, err := r.encoding.Encode("\n")
		if err != nil {
			return err
		}

		line = append(line, nl...)
	}

	if _, err := r.sink.Write(line); err != nil {
		return errors.Wrap(err, "writing timing report")
	}

	return nil
}

// Scope runs fn under a Reporter created from the arguments. The report is
// written however fn exits: on return, on error and on panic, after which the
// panic continues. fn's error takes precedence over a report write error.
func Scope[R timer.Number](
	sink io.Writer,
	label string,
	p period.Period,
	fn func() error,
	opts ...Option,
) (err error) {
	r := New[R](sink, label, p, opts...)

	defer func() {
		if stopErr := r.Stop(); err == nil {
			err = stopErr
		}
	}()

	return fn()
}
