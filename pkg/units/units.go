// Package units resolves short unit suffixes ("ns", "ms", "s", ...) for tick
// periods, with one pre-encoded table per supported text encoding.
package units

import (
	"maps"
	"slices"

	"github.com/smykla-skalski/benchtimer/pkg/period"
)

// labels is the master UTF-8 table. Exa keeps the "Ex" spelling.
var labels = map[period.Period]string{
	period.Atto:   "as",
	period.Femto:  "fs",
	period.Pico:   "ps",
	period.Nano:   "ns",
	period.Micro:  "us",
	period.Milli:  "ms",
	period.Centi:  "cs",
	period.Deci:   "ds",
	period.Second: "s",
	period.Hecto:  "hs",
	period.Kilo:   "ks",
	period.Mega:   "Ms",
	period.Giga:   "Gs",
	period.Tera:   "Ts",
	period.Peta:   "Ps",
	period.Exa:    "Ex",
}

// tables holds the labels of every encoding, built once at init.
var tables = buildTables()

// Entry is one row of the unit table.
type Entry struct {
	Period period.Period
	Label  string
}

// Label returns the UTF-8 suffix for p, or "" when p has no registered suffix.
func Label(p period.Period) string {
	return labels[p.Reduced()]
}

// LabelFor returns the suffix for p encoded in enc. Unregistered periods and
// unknown encodings yield nil.
func LabelFor(p period.Period, enc Encoding) []byte {
	table, ok := tables[enc]
	if !ok {
		return nil
	}

	return table[p.Reduced()]
}

// Known reports whether p has a registered suffix.
func Known(p period.Period) bool {
	_, ok := labels[p.Reduced()]

	return ok
}

// Entries returns the table ordered from the shortest to the longest period.
func Entries() []Entry {
	keys := slices.Collect(maps.Keys(labels))
	slices.SortFunc(keys, func(a, b period.Period) int {
		return a.Rat().Cmp(b.Rat())
	})

	out := make([]Entry, 0, len(keys))
	for _, p := range keys {
		out = append(out, Entry{Period: p, Label: labels[p]})
	}

	return out
}

func buildTables() map[Encoding]map[period.Period][]byte {
	out := make(map[Encoding]map[period.Period][]byte, len(EncodingValues()))

	for _, enc := range EncodingValues() {
		table := make(map[period.Period][]byte, len(labels))

		for p, label := range labels {
			encoded, err := enc.Encode(label)
			if err != nil {
				// labels are ASCII, every supported encoding can represent them
				panic(err)
			}

			table[p] = encoded
		}

		out[enc] = table
	}

	return out
}
