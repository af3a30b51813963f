// Package period provides exact rational tick periods and rescaling between them.
package period

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidPeriod is returned when a period has a non-positive numerator or denominator.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrUnknownPeriod is returned when a period name or unit cannot be resolved.
	ErrUnknownPeriod = errors.New("unknown period")
)

// Period is the number of seconds one tick represents, as a reduced ratio Num/Den.
type Period struct {
	Num int64
	Den int64
}

// SI and clock periods.
var (
	Atto   = Period{1, 1_000_000_000_000_000_000}
	Femto  = Period{1, 1_000_000_000_000_000}
	Pico   = Period{1, 1_000_000_000_000}
	Nano   = Period{1, 1_000_000_000}
	Micro  = Period{1, 1_000_000}
	Milli  = Period{1, 1_000}
	Centi  = Period{1, 100}
	Deci   = Period{1, 10}
	Second = Period{1, 1}
	Deca   = Period{10, 1}
	Hecto  = Period{100, 1}
	Kilo   = Period{1_000, 1}
	Mega   = Period{1_000_000, 1}
	Giga   = Period{1_000_000_000, 1}
	Tera   = Period{1_000_000_000_000, 1}
	Peta   = Period{1_000_000_000_000_000, 1}
	Exa    = Period{1_000_000_000_000_000_000, 1}
	Minute = Period{60, 1}
	Hour   = Period{3600, 1}
)

// New returns the reduced period num/den.
func New(num, den int64) (Period, error) {
	if num <= 0 || den <= 0 {
		return Period{}, errors.Wrapf(ErrInvalidPeriod, "%d/%d", num, den)
	}

	g := gcd(num, den)

	return Period{Num: num / g, Den: den / g}, nil
}

// MustNew is like New but panics on an invalid ratio.
func MustNew(num, den int64) Period {
	p, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return p
}

// IsValid reports whether both parts of the ratio are positive.
func (p Period) IsValid() bool {
	return p.Num > 0 && p.Den > 0
}

// Rat returns the period as an exact rational number of seconds.
func (p Period) Rat() *big.Rat {
	return new(big.Rat).SetFrac64(p.Num, p.Den)
}

// Equal compares two periods by value, so 2/2000 equals 1/1000.
func (p Period) Equal(other Period) bool {
	if !p.IsValid() || !other.IsValid() {
		return p == other
	}

	return p.Rat().Cmp(other.Rat()) == 0
}

// Reduced returns p with numerator and denominator divided by their gcd.
func (p Period) Reduced() Period {
	if !p.IsValid() {
		return p
	}

	g := gcd(p.Num, p.Den)

	return Period{Num: p.Num / g, Den: p.Den / g}
}

func (p Period) String() string {
	if p.Den == 1 {
		return strconv.FormatInt(p.Num, 10)
	}

	return strconv.FormatInt(p.Num, 10) + "/" + strconv.FormatInt(p.Den, 10)
}

// Factor returns the exact ratio from / to: multiplying a tick count in
// period from by the factor yields the count in period to.
func Factor(from, to Period) *big.Rat {
	f := from.Rat()

	return f.Quo(f, to.Rat())
}

// Rescale converts a tick count expressed in period from into period to.
// The computation is exact; rounding is left to the caller's final cast.
func Rescale(count *big.Rat, from, to Period) *big.Rat {
	out := new(big.Rat).Set(count)

	return out.Mul(out, Factor(from, to))
}

// named maps long and suffix spellings to periods for Parse.
var named = map[string]Period{
	"atto": Atto, "as": Atto,
	"femto": Femto, "fs": Femto,
	"pico": Pico, "ps": Pico,
	"nano": Nano, "ns": Nano,
	"micro": Micro, "us": Micro, "µs": Micro,
	"milli": Milli, "ms": Milli,
	"centi": Centi, "cs": Centi,
	"deci": Deci, "ds": Deci,
	"second": Second, "s": Second, "sec": Second,
	"deca": Deca,
	"hecto": Hecto, "hs": Hecto,
	"kilo": Kilo, "ks": Kilo,
	"mega": Mega, "Ms": Mega,
	"giga": Giga, "Gs": Giga,
	"tera": Tera, "Ts": Tera,
	"peta": Peta, "Ps": Peta,
	"exa": Exa, "Ex": Exa,
	"minute": Minute, "min": Minute,
	"hour": Hour, "h": Hour,
}

// Parse resolves a period from a unit suffix ("ms"), a name ("milli") or a
// ratio ("1/1000", "60"). Suffixes are case-sensitive because "ms" and "Ms"
// differ; names are matched case-insensitively.
func Parse(s string) (Period, error) {
	s = strings.TrimSpace(s)

	if p, ok := named[s]; ok {
		return p, nil
	}

	if p, ok := named[strings.ToLower(s)]; ok && len(s) > 2 {
		return p, nil
	}

	numStr, denStr, hasDen := strings.Cut(s, "/")

	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Period{}, errors.Wrapf(ErrUnknownPeriod, "%q", s)
	}

	den := int64(1)

	if hasDen {
		den, err = strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
		if err != nil {
			return Period{}, errors.Wrapf(ErrUnknownPeriod, "%q", s)
		}
	}

	return New(num, den)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
