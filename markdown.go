package tbltex

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

func writeMarkdown(w io.Writer, t *Table, opts Options) error {
	numCols := len(t.Header)

	// Minimum 3 leaves room for alignment markers.
	widths := computeWidths(t)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	if err := writeMarkdownRow(w, t.Header, widths, opts.Align); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch opts.Align {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range t.Rows {
		if err := writeMarkdownRow(w, row, widths, opts.Align); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, align Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = strings.ReplaceAll(cells[i], "|", `\|`)
		}
		padded[i] = alignCell(cell, width, align)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

// computeWidths returns the display width of the widest cell per column.
func computeWidths(t *Table) []int {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
