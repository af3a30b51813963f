package config

import (
	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
)

//go:generate enumer -type=Representation -trimprefix=Representation -transform=lower -json -text -yaml
//go:generate go run github.com/smykla-skalski/benchtimer/tools/enumerfix representation_enumer.go
//go:generate enumer -type=Format -trimprefix=Format -transform=lower -json -text -yaml
//go:generate go run github.com/smykla-skalski/benchtimer/tools/enumerfix format_enumer.go

var (
	// ErrInvalidRepresentation is returned when a representation name is unknown.
	ErrInvalidRepresentation = errors.New("invalid representation")

	// ErrInvalidFormat is returned when an output format name is unknown.
	ErrInvalidFormat = errors.New("invalid format")
)

// Representation is the numeric type measurements are reported in.
type Representation int

const (
	// RepresentationFloat64 keeps fractional ticks.
	RepresentationFloat64 Representation = iota

	// RepresentationInt64 truncates ticks toward zero.
	RepresentationInt64
)

// Format is the report output format.
type Format int

const (
	// FormatText prints one "label value unit" line per command.
	FormatText Format = iota

	// FormatTable prints a table of all commands.
	FormatTable

	// FormatJSON prints a JSON array.
	FormatJSON

	// FormatYAML prints a YAML list.
	FormatYAML
)

// ParseRepresentation parses a representation name.
func ParseRepresentation(s string) (Representation, error) {
	r, err := RepresentationString(s)
	if err != nil {
		return RepresentationFloat64, errors.Wrapf(
			ErrInvalidRepresentation,
			"%q, must be one of %v",
			s,
			RepresentationStrings(),
		)
	}

	return r, nil
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	f, err := FormatString(s)
	if err != nil {
		return FormatText, errors.Wrapf(ErrInvalidFormat, "%q, must be one of %v", s, FormatStrings())
	}

	return f, nil
}

// JSONSchema describes Representation as a string enum.
func (Representation) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        stringsToAny(RepresentationStrings()),
		Description: "Numeric type of reported tick counts",
		Default:     RepresentationFloat64.String(),
	}
}

// JSONSchema describes Format as a string enum.
func (Format) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        stringsToAny(FormatStrings()),
		Description: "Report output format",
		Default:     FormatText.String(),
	}
}

func stringsToAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}

	return out
}
