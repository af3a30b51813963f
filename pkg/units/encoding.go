package units

import (
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

//go:generate enumer -type=Encoding -trimprefix=Encoding -transform=lower -json -text -yaml
//go:generate go run github.com/smykla-skalski/benchtimer/tools/enumerfix encoding_enumer.go

// ErrUnknownEncoding is returned when an encoding name cannot be resolved.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Encoding identifies the text encoding a report sink expects.
type Encoding int

const (
	// EncodingUTF8 is the default; strings are written as-is.
	EncodingUTF8 Encoding = iota

	// EncodingUTF16LE writes little-endian UTF-16 without a BOM.
	EncodingUTF16LE

	// EncodingUTF16BE writes big-endian UTF-16 without a BOM.
	EncodingUTF16BE

	// EncodingUTF32LE writes little-endian UTF-32 without a BOM.
	EncodingUTF32LE

	// EncodingUTF32BE writes big-endian UTF-32 without a BOM.
	EncodingUTF32BE
)

// ParseEncoding parses an encoding name such as "utf16le".
func ParseEncoding(s string) (Encoding, error) {
	enc, err := EncodingString(s)
	if err != nil {
		return EncodingUTF8, errors.Wrapf(ErrUnknownEncoding, "%q", s)
	}

	return enc, nil
}

// Codec returns the x/text codec for the encoding.
//
//nolint:ireturn // x/text exposes codecs as encoding.Encoding
func (e Encoding) Codec() encoding.Encoding {
	switch e {
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case EncodingUTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	case EncodingUTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	default:
		return unicode.UTF8
	}
}

// Encode converts a UTF-8 string to the encoding.
func (e Encoding) Encode(s string) ([]byte, error) {
	if e == EncodingUTF8 {
		return []byte(s), nil
	}

	out, err := e.Codec().NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(err, "encoding to %s", e)
	}

	return out, nil
}

// Decode converts bytes in the encoding back to a UTF-8 string.
func (e Encoding) Decode(b []byte) (string, error) {
	if e == EncodingUTF8 {
		return string(b), nil
	}

	out, err := e.Codec().NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrapf(err, "decoding from %s", e)
	}

	return string(out), nil
}

// Writer wraps w so UTF-8 text written to it reaches w in the encoding.
// The returned writer must be closed to flush buffered output; closing it
// does not close w.
func (e Encoding) Writer(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, e.Codec().NewEncoder())
}
