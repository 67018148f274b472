package tbltex

import (
	"fmt"
	"io"
	"strings"
)

// Rounded box-drawing characters.
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
	boxTopTee      = "┬"
	boxBottomTee   = "┴"
	boxLeftTee     = "├"
	boxRightTee    = "┤"
	boxCross       = "┼"
)

func writeText(w io.Writer, t *Table, opts Options) error {
	widths := computeWidths(t)

	if err := drawHLine(w, widths, boxTopLeft, boxTopTee, boxTopRight); err != nil {
		return err
	}
	if err := drawRow(w, t.Header, widths, opts.Align); err != nil {
		return err
	}
	if err := drawHLine(w, widths, boxLeftTee, boxCross, boxRightTee); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := drawRow(w, row, widths, opts.Align); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, boxBottomLeft, boxBottomTee, boxBottomRight)
}

func drawHLine(w io.Writer, widths []int, left, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(boxHorizontal, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int, align Alignment) error {
	var sb strings.Builder
	sb.WriteString(boxVertical)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(alignCell(cell, width, align))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(boxVertical)
		}
	}
	sb.WriteString(boxVertical)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}
