package timer

import (
	"math/big"
	"strconv"
)

// Number is the set of tick representations a Timer can report in.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// significantDigits matches the default precision of C-style %g output.
const significantDigits = 6

// IsIntegral reports whether R truncates on division.
func IsIntegral[R Number]() bool {
	var one R = 1

	return one/2 == 0
}

// FormatCount renders a tick count: integers in base 10, floats with six
// significant digits ("%g" style, so 100.5 stays "100.5" and 1e-7 is "1e-07").
func FormatCount[R Number](v R) string {
	if !IsIntegral[R]() {
		return strconv.FormatFloat(float64(v), 'g', significantDigits, 64)
	}

	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatUint(uint64(v), 10)
}

func toRat[R Number](v R) *big.Rat {
	if !IsIntegral[R]() {
		r := new(big.Rat).SetFloat64(float64(v))
		if r == nil {
			// NaN and infinities have no rational form
			return new(big.Rat)
		}

		return r
	}

	if v < 0 {
		return new(big.Rat).SetInt64(int64(v))
	}

	return new(big.Rat).SetUint64(uint64(v))
}

// fromRat casts an exact value to R. Integer representations truncate toward
// zero; values outside R's range wrap the way Go integer conversions do.
func fromRat[R Number](r *big.Rat) R {
	if !IsIntegral[R]() {
		f, _ := r.Float64()

		return R(f)
	}

	q := new(big.Int).Quo(r.Num(), r.Denom())
	if q.Sign() >= 0 && !q.IsInt64() {
		return R(q.Uint64())
	}

	return R(q.Int64())
}
