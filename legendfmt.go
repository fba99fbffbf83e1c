package legendfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrColumnType        = errors.New("mixed column types")
	ErrColumnLength      = errors.New("column length mismatch")
	ErrUnknownBorder     = errors.New("unknown border style")
)

// Format represents an output format.
type Format string

const (
	Legend   Format = "legend"
	Table    Format = "table"
	JSON     Format = "json"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	Markdown Format = "markdown"
)

var formats = []Format{Legend, Table, JSON, YAML, CSV, Markdown}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string, e.g. from a CLI flag.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders the measurement set in format f and writes it to w.
// Rounding applies wherever the format carries numbers as text
// (Legend, Table, CSV, Markdown); JSON and YAML keep full precision.
func Write(w io.Writer, f Format, ms []Measurement, rounding int) error {
	switch f {
	case Legend:
		return writeLegend(w, ms, rounding)
	case Table:
		return WriteTable(w, ms, rounding, BorderRounded)
	case JSON:
		return writeJSON(w, ms)
	case YAML:
		return writeYAML(w, ms)
	case CSV:
		return writeCSV(w, ms, rounding)
	case Markdown:
		return writeMarkdown(w, ms, rounding)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders the measurement set and returns the bytes.
func Marshal(f Format, ms []Measurement, rounding int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, ms, rounding); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLegend(w io.Writer, ms []Measurement, rounding int) error {
	if len(ms) == 0 {
		return nil
	}
	block, err := Render(ms, rounding)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, block)
	return err
}
