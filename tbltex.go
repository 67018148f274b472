package tbltex

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNoInput           = errors.New("no input available")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrInvalidSort       = errors.New("invalid sort directive")
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidAlignment  = errors.New("invalid alignment")
)

// Format represents an output format.
type Format string

const (
	LaTeX    Format = "latex"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	HTML     Format = "html"
	Text     Format = "text"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

var formats = []Format{LaTeX, Markdown, CSV, TSV, HTML, Text, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

// ParseAlignment accepts the LaTeX column letters l, c and r.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "c":
		return AlignCenter, nil
	case "l":
		return AlignLeft, nil
	case "r":
		return AlignRight, nil
	default:
		return AlignCenter, fmt.Errorf("%w: %q", ErrInvalidAlignment, s)
	}
}

// Letter returns the LaTeX column letter for a.
func (a Alignment) Letter() string {
	switch a {
	case AlignLeft:
		return "l"
	case AlignRight:
		return "r"
	default:
		return "c"
	}
}

// DefaultDocumentClass is the class used by the document preamble when
// Options.DocumentClass is empty.
const DefaultDocumentClass = "jsarticle"

// Options control rendering. The zero value renders a bare centered
// tabular with "|" column rules.
type Options struct {
	// Document wraps LaTeX output in a \documentclass preamble and
	// \end{document} postamble.
	Document      bool
	DocumentClass string
	Align         Alignment
	// Rule separates the column letters after \begin{tabular}. Empty means "|".
	Rule string
}

func (o Options) documentClass() string {
	if o.DocumentClass == "" {
		return DefaultDocumentClass
	}
	return o.DocumentClass
}

func (o Options) rule() string {
	if o.Rule == "" {
		return "|"
	}
	return o.Rule
}

// Write renders t in format f to w.
func Write(w io.Writer, f Format, t *Table, opts Options) error {
	switch f {
	case LaTeX:
		return writeLaTeX(w, t, opts)
	case Markdown:
		return writeMarkdown(w, t, opts)
	case CSV:
		return writeCSV(w, t)
	case TSV:
		return writeTSV(w, t)
	case HTML:
		return writeHTML(w, t, opts)
	case Text:
		return writeText(w, t, opts)
	case JSON:
		return writeJSON(w, t)
	case YAML:
		return writeYAML(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t and returns the bytes.
func Marshal(f Format, t *Table, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
