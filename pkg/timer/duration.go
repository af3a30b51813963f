package timer

import (
	"math/big"
	"time"

	"github.com/smykla-skalski/benchtimer/pkg/period"
	"github.com/smykla-skalski/benchtimer/pkg/units"
)

// Duration is a tick count tagged with the period of one tick.
type Duration[R Number] struct {
	Count  R
	Period period.Period
}

// Convert rescales d to period p and representation To. The ratio is applied
// exactly before the single final cast, so integer targets truncate toward
// zero and float targets keep fractional ticks.
func Convert[To, From Number](d Duration[From], p period.Period) Duration[To] {
	if d.Period.Equal(p) {
		return Duration[To]{Count: fromRat[To](toRat(d.Count)), Period: p}
	}

	return Duration[To]{
		Count:  fromRat[To](period.Rescale(toRat(d.Count), d.Period, p)),
		Period: p,
	}
}

// FromStd converts a time.Duration into period p.
func FromStd[R Number](d time.Duration, p period.Period) Duration[R] {
	return Convert[R](Duration[int64]{Count: int64(d), Period: period.Nano}, p)
}

// In rescales d to period p keeping the representation.
func (d Duration[R]) In(p period.Period) Duration[R] {
	return Convert[R](d, p)
}

// Rat returns the duration as an exact number of seconds.
func (d Duration[R]) Rat() *big.Rat {
	r := toRat(d.Count)

	return r.Mul(r, d.Period.Rat())
}

// Std converts d to a time.Duration, truncating below one nanosecond.
func (d Duration[R]) Std() time.Duration {
	return time.Duration(Convert[int64](d, period.Nano).Count)
}

// Seconds returns the duration in seconds as a float64.
func (d Duration[R]) Seconds() float64 {
	f, _ := d.Rat().Float64()

	return f
}

// Label returns the unit suffix for d's period, or "" for unregistered periods.
func (d Duration[R]) Label() string {
	return units.Label(d.Period)
}

// String renders the count followed by the unit suffix, e.g. "12.5ms".
func (d Duration[R]) String() string {
	return FormatCount(d.Count) + d.Label()
}

// Add returns d + other, rescaling other to d's period first.
func (d Duration[R]) Add(other Duration[R]) Duration[R] {
	if !other.Period.Equal(d.Period) {
		other = other.In(d.Period)
	}

	return Duration[R]{Count: d.Count + other.Count, Period: d.Period}
}

// Div divides the count by n, truncating toward zero for integer
// representations. n must be positive and need not fit in R.
func (d Duration[R]) Div(n int) Duration[R] {
	q := new(big.Rat).Quo(toRat(d.Count), new(big.Rat).SetInt64(int64(n)))

	return Duration[R]{Count: fromRat[R](q), Period: d.Period}
}
