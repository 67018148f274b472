package tbltex

import (
	"fmt"
	"io"
	"strings"
)

func writeLaTeX(w io.Writer, t *Table, opts Options) error {
	if opts.Document {
		if _, err := fmt.Fprintf(w, "\\documentclass{%s}\n\\begin{document}\n", opts.documentClass()); err != nil {
			return err
		}
	}

	letters := make([]string, len(t.Header))
	for i := range letters {
		letters[i] = opts.Align.Letter()
	}
	if _, err := fmt.Fprintf(w, "\\begin{tabular}{%s} \\hline\n\t%s\\\\ \\hline",
		strings.Join(letters, opts.rule()), strings.Join(t.Header, " & ")); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintf(w, "\n\t%s\\\\", strings.Join(row, " & ")); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, " \\hline\n\\end{tabular}\n"); err != nil {
		return err
	}

	if opts.Document {
		if _, err := io.WriteString(w, "\\end{document}\n"); err != nil {
			return err
		}
	}
	return nil
}
