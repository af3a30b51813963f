package timer

import (
	"math/big"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/benchtimer/pkg/period"
)

// ErrInvalidCount is returned by Average when the repeat count is not positive.
var ErrInvalidCount = errors.New("repeat count must be positive")

// Func adapts a callable that cannot fail for use with Time and Average.
func Func(fn func()) func() error {
	return func() error {
		fn()

		return nil
	}
}

// Time calls fn once and returns how long the call took.
// An error from fn is returned as-is together with a zero Duration.
func Time[R Number](p period.Period, fn func() error, opts ...Option) (Duration[R], error) {
	t := New[R](p, opts...)

	if err := fn(); err != nil {
		return Duration[R]{}, err
	}

	return t.Duration(), nil
}

// TimeResult is Time for callables that produce a value. The value is
// returned alongside the duration; on error both are zero.
func TimeResult[R Number, T any](
	p period.Period,
	fn func() (T, error),
	opts ...Option,
) (Duration[R], T, error) {
	t := New[R](p, opts...)

	result, err := fn()
	if err != nil {
		var zero T

		return Duration[R]{}, zero, err
	}

	return t.Duration(), result, nil
}

// Elapsed is Time returning only the tick count.
func Elapsed[R Number](p period.Period, fn func() error, opts ...Option) (R, error) {
	d, err := Time[R](p, fn, opts...)

	return d.Count, err
}

// ElapsedResult is TimeResult returning only the tick count.
func ElapsedResult[R Number, T any](
	p period.Period,
	fn func() (T, error),
	opts ...Option,
) (R, T, error) {
	d, result, err := TimeResult[R](p, fn, opts...)

	return d.Count, result, err
}

// AverageDuration calls fn count times, timing each call independently, and
// returns the arithmetic mean. Fixed per-call overhead is therefore part of
// every sample. The first failing call stops the loop and its error is
// returned as-is; no partial mean is computed.
func AverageDuration[R Number](
	p period.Period,
	count int,
	fn func() error,
	opts ...Option,
) (Duration[R], error) {
	if count <= 0 {
		return Duration[R]{}, errors.Wrapf(ErrInvalidCount, "got %d", count)
	}

	// Exact sum; R may be too narrow to hold it or count.
	total := new(big.Rat)

	for range count {
		d, err := Time[R](p, fn, opts...)
		if err != nil {
			return Duration[R]{}, err
		}

		total.Add(total, toRat(d.Count))
	}

	mean := total.Quo(total, new(big.Rat).SetInt64(int64(count)))

	return Duration[R]{Count: fromRat[R](mean), Period: p}, nil
}

// Average is AverageDuration returning only the tick count.
func Average[R Number](p period.Period, count int, fn func() error, opts ...Option) (R, error) {
	d, err := AverageDuration[R](p, count, fn, opts...)

	return d.Count, err
}
