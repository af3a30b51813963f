package report

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// TextRenderer prints one "label mean unit" line per result in the
// configured encoding.
type TextRenderer struct {
	opts Options
}

// Render writes the lines. The host snapshot is not part of text output.
func (t *TextRenderer) Render(w io.Writer, r *Report) (err error) {
	out := t.opts.Encoding.Writer(w)

	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = errors.Wrap(closeErr, "flushing text report")
		}
	}()

	for _, res := range r.Results {
		line := strings.ReplaceAll(t.opts.Label, CommandPlaceholder, res.Command) + res.Mean + res.Unit
		if t.opts.Newline {
			line += "\n"
		}

		if _, err := io.WriteString(out, line); err != nil {
			return errors.Wrap(err, "writing text report")
		}
	}

	return nil
}
