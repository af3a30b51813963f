// Package timer measures elapsed time on a monotonic clock and reports it in a
// configurable tick representation and period.
//
// A Timer[float64] with period.Second reports fractional seconds; a
// Timer[int64] with period.Milli reports whole milliseconds, truncated toward
// zero. The package-level helpers time a callable once (Time, TimeResult) or
// average it over independent runs (Average).
//
// Timers are not safe for concurrent use.
package timer

import (
	"math/big"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/benchtimer/pkg/period"
)

// native is the resolution of time.Duration.
var native = period.Nano

// Option configures a Timer.
type Option func(*options)

type options struct {
	clock Clock
}

// WithClock replaces the system clock. Nil is ignored.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{clock: SystemClock{}}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Timer measures the time since it was started or last reset.
type Timer[R Number] struct {
	clock  Clock
	period period.Period
	factor *big.Rat
	start  time.Time
}

// New starts a timer reporting in period p. An invalid period is a
// programming error and panics.
func New[R Number](p period.Period, opts ...Option) *Timer[R] {
	if !p.IsValid() {
		panic(errors.Wrapf(period.ErrInvalidPeriod, "timer period %s", p))
	}

	o := buildOptions(opts)

	t := &Timer[R]{
		clock:  o.clock,
		period: p,
		factor: period.Factor(native, p),
	}
	t.start = t.clock.Now()

	return t
}

// Reset restarts the timer from now, discarding the elapsed time.
func (t *Timer[R]) Reset() {
	t.start = t.clock.Now()
}

// Elapsed returns the ticks since start.
func (t *Timer[R]) Elapsed() R {
	return t.Duration().Count
}

// Duration returns the time since start tagged with the timer's period.
func (t *Timer[R]) Duration() Duration[R] {
	ns := t.clock.Now().Sub(t.start)

	count := new(big.Rat).SetInt64(int64(ns))
	count.Mul(count, t.factor)

	return Duration[R]{Count: fromRat[R](count), Period: t.period}
}

// StartedAt returns the instant the timer counts from.
func (t *Timer[R]) StartedAt() time.Time {
	return t.start
}

// Period returns the tick period the timer reports in.
func (t *Timer[R]) Period() period.Period {
	return t.period
}
