// Package schema reflects the config types into the JSON Schema that editors
// use to validate benchtimer TOML files.
package schema

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/smykla-skalski/benchtimer/pkg/config"
)

const (
	draft = "https://json-schema.org/draft/2020-12/schema"
	title = "benchtimer configuration"

	// SchemaURL is where the published schema lives.
	SchemaURL = "https://raw.githubusercontent.com/smykla-skalski/benchtimer/main/schema/benchtimer.schema.json"

	fileMode = 0o644
	dirMode  = 0o755
)

// Filename is the name the schema is published under.
func Filename() string {
	return filepath.Base(SchemaURL)
}

// SchemaDirective returns the Taplo comment binding a TOML file to SchemaURL.
func SchemaDirective() string {
	return "#:schema " + SchemaURL
}

// Generate reflects config.Config. Enum types describe themselves through
// their JSONSchema methods.
func Generate() *jsonschema.Schema {
	s := (&jsonschema.Reflector{ExpandedStruct: true}).Reflect(&config.Config{})
	s.Version = draft
	s.ID = jsonschema.ID(SchemaURL)
	s.Title = title
	s.Description = "Settings for benchtimer runs and reports, merged from the global file, the project file, BENCHTIMER_* variables and flags."

	return s
}

// Encode writes the schema to w as JSON followed by a newline.
func Encode(w io.Writer, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if indent {
		enc.SetIndent("", "  ")
	}

	return errors.Wrap(enc.Encode(Generate()), "encoding schema")
}

// GenerateJSON returns what Encode writes.
func GenerateJSON(indent bool) ([]byte, error) {
	var buf bytes.Buffer

	if err := Encode(&buf, indent); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile writes the schema to path, creating missing parent directories.
func WriteFile(path string, indent bool) error {
	data, err := GenerateJSON(indent)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(path))
	}

	//nolint:gosec // schema is public, world-readable on purpose
	return errors.Wrapf(os.WriteFile(path, data, fileMode), "writing %s", path)
}
