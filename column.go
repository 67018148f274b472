package tbltex

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// SortOrder is the sort directive attached to a column.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAscending
	SortDescending
	SortSecondaryAscending
	SortSecondaryDescending
)

// ParseSortOrder maps the directive letters u, d, U and D to a SortOrder.
// Only the first character is significant.
func ParseSortOrder(s string) (SortOrder, error) {
	if s == "" {
		return SortNone, fmt.Errorf("%w: empty", ErrInvalidSort)
	}
	switch s[0] {
	case 'u':
		return SortAscending, nil
	case 'd':
		return SortDescending, nil
	case 'U':
		return SortSecondaryAscending, nil
	case 'D':
		return SortSecondaryDescending, nil
	default:
		return SortNone, fmt.Errorf("%w: %q", ErrInvalidSort, s)
	}
}

func (s SortOrder) primary() bool { return s == SortAscending || s == SortDescending }

func (s SortOrder) secondary() bool {
	return s == SortSecondaryAscending || s == SortSecondaryDescending
}

func (s SortOrder) descending() bool {
	return s == SortDescending || s == SortSecondaryDescending
}

// Column is one output column: a header label, its formatted values and
// its sort directive.
type Column struct {
	Label  string
	Values []string
	Sort   SortOrder
}

// compareCells orders two formatted cells. Both sides are compared as
// integers when both have a leading integer that fits in an int64,
// otherwise as strings.
func compareCells(a, b string) int {
	x, okA := leadingInt(a)
	y, okB := leadingInt(b)
	if okA && okB {
		return cmp.Compare(x, y)
	}
	return strings.Compare(a, b)
}

// leadingInt parses the integer prefix of s, so "12.5" yields 12 and
// "7kg" yields 7. Leading blanks and a single sign are accepted.
func leadingInt(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	i := 0
	if s != "" && (s[0] == '-' || s[0] == '+') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:j], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
