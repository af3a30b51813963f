// Package report renders benchmark results.
package report

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/benchtimer/internal/bench"
	"github.com/smykla-skalski/benchtimer/internal/color"
	"github.com/smykla-skalski/benchtimer/internal/hostinfo"
	"github.com/smykla-skalski/benchtimer/pkg/config"
	"github.com/smykla-skalski/benchtimer/pkg/units"
)

// CommandPlaceholder in a text label expands to the command line.
const CommandPlaceholder = "{command}"

// Report is everything a renderer prints.
type Report struct {
	Host    *hostinfo.Info  `json:"host,omitempty"    yaml:"host,omitempty"`
	Results []*bench.Result `json:"results"           yaml:"results"`
}

// Renderer writes a Report to w.
type Renderer interface {
	Render(w io.Writer, r *Report) error
}

// Options holds the presentation settings shared by renderers.
type Options struct {
	Label    string
	Encoding units.Encoding
	Newline  bool
	Theme    color.Theme
}

// OptionsFromConfig resolves the report section of a loaded config.
// useColor is the caller's decision after terminal detection.
func OptionsFromConfig(cfg *config.ReportConfig, useColor bool) (Options, error) {
	if cfg == nil {
		cfg = &config.ReportConfig{}
	}

	enc := units.EncodingUTF8

	if cfg.Encoding != "" {
		var err error

		enc, err = units.ParseEncoding(cfg.Encoding)
		if err != nil {
			return Options{}, err
		}
	}

	return Options{
		Label:    cfg.Label,
		Encoding: enc,
		Newline:  cfg.IsNewlineEnabled(),
		Theme:    color.NewTheme(useColor && cfg.IsColorEnabled()),
	}, nil
}

// New returns the renderer for format.
//
//nolint:ireturn // renderers are selected at runtime
func New(format config.Format, opts Options) (Renderer, error) {
	switch format {
	case config.FormatText:
		return &TextRenderer{opts: opts}, nil
	case config.FormatTable:
		return &TableRenderer{opts: opts}, nil
	case config.FormatJSON:
		return &JSONRenderer{}, nil
	case config.FormatYAML:
		return &YAMLRenderer{}, nil
	default:
		return nil, errors.Wrapf(config.ErrInvalidFormat, "%d", int(format))
	}
}
