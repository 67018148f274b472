package tbltex

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, t *Table, opts Options) error {
	style := alignStyle(opts.Align)

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <thead>\n    <tr>"); err != nil {
		return err
	}
	for _, col := range t.Header {
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", style, html.EscapeString(col)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>\n  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, cell := range row {
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", style, html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func alignStyle(align Alignment) string {
	switch align {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
