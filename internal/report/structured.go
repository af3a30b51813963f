package report

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// JSONRenderer prints the report as indented JSON.
type JSONRenderer struct{}

// Render writes r as JSON followed by a newline.
func (*JSONRenderer) Render(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encoding JSON report")
	}

	return nil
}

// YAMLRenderer prints the report as a YAML document.
type YAMLRenderer struct{}

// Render writes r as YAML.
func (*YAMLRenderer) Render(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encoding YAML report")
	}

	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "flushing YAML report")
	}

	return nil
}
