package tbltex

import (
	"fmt"
	"slices"
	"strconv"
)

// Table is the assembled output: header labels and rectangular rows.
type Table struct {
	Header []string   `json:"header" yaml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

// pending holds the directives captured since the last declared column.
type pending struct {
	sort       SortOrder
	resolution Resolution
}

func (p *pending) reset() { *p = pending{resolution: NoRounding} }

// Builder assembles columns from tokenized input. Directives set through
// SetSort and SetResolution apply to the next declared column and are then
// cleared; SetIndex picks the source field that column reads from.
type Builder struct {
	data    *Data
	pending pending
	index   int
	columns []Column
}

// NewBuilder returns a Builder reading from data. A nil data may be
// supplied later with Load.
func NewBuilder(data *Data) *Builder {
	b := &Builder{data: data}
	b.pending.reset()
	return b
}

// Load replaces the input read by subsequent declarations.
func (b *Builder) Load(data *Data) { b.data = data }

// Loaded reports whether the Builder has input.
func (b *Builder) Loaded() bool { return b.data != nil }

// SetIndex sets the 0-based source field for the next declared column.
func (b *Builder) SetIndex(i int) { b.index = i }

// Index returns the source field the next declared column will read.
func (b *Builder) Index() int { return b.index }

// SetSort sets the pending sort directive.
func (b *Builder) SetSort(s SortOrder) { b.pending.sort = s }

// SetResolution sets the pending rounding resolution.
func (b *Builder) SetResolution(r Resolution) { b.pending.resolution = r }

// Columns returns the columns declared so far.
func (b *Builder) Columns() []Column { return b.columns }

// Declare adds a column labeled label holding the formatted values of the
// current source field. Every row must have that field. The source index
// then advances, wrapping to zero at the width of the first row.
func (b *Builder) Declare(label string) error {
	if b.data == nil {
		return ErrNoInput
	}
	values := make([]string, len(b.data.Rows))
	for i, row := range b.data.Rows {
		if b.index < 0 || b.index >= len(row) {
			return fmt.Errorf("%w: row %d has no field %d", ErrIndexOutOfRange, i+1, b.index)
		}
		values[i] = FormatValue(row[b.index], b.pending.resolution)
	}
	b.columns = append(b.columns, Column{Label: label, Values: values, Sort: b.pending.sort})
	b.pending.reset()

	b.index++
	if w := b.data.Width(); w > 0 && b.index >= w {
		b.index = 0
	}
	return nil
}

// autoColumns builds one column per source field when none was declared.
// Pending resolution applies to all of them, pending sort to the first.
func (b *Builder) autoColumns() []Column {
	width := len(b.data.Header)
	for _, row := range b.data.Rows {
		width = max(width, len(row))
	}
	cols := make([]Column, width)
	for j := range cols {
		label := "Column " + strconv.Itoa(j+1)
		if j < len(b.data.Header) {
			label = b.data.Header[j]
		}
		values := make([]string, len(b.data.Rows))
		for i, row := range b.data.Rows {
			if j < len(row) {
				values[i] = FormatValue(row[j], b.pending.resolution)
			}
		}
		cols[j] = Column{Label: label, Values: values}
	}
	if width > 0 {
		cols[0].Sort = b.pending.sort
	}
	return cols
}

// Build assembles and sorts the table.
func (b *Builder) Build() *Table {
	cols := b.columns
	if len(cols) == 0 && b.data != nil {
		cols = b.autoColumns()
	}
	return Assemble(cols)
}

// Assemble zips columns into rows, padding short columns with empty cells,
// then orders the rows by the columns' sort directives.
func Assemble(cols []Column) *Table {
	t := &Table{Header: make([]string, len(cols))}
	n := 0
	for j, c := range cols {
		t.Header[j] = c.Label
		n = max(n, len(c.Values))
	}
	t.Rows = make([][]string, n)
	for i := range t.Rows {
		row := make([]string, len(cols))
		for j, c := range cols {
			if i < len(c.Values) {
				row[j] = c.Values[i]
			}
		}
		t.Rows[i] = row
	}
	sortRows(t.Rows, cols)
	return t
}

// SortKeys returns the column indexes rows are ordered by, most significant
// first: primary columns, then secondary ones. Within a tier a later
// declared column outranks an earlier one, as if each column were applied
// as a stable sort pass in declaration order.
func SortKeys(cols []Column) []int {
	var keys []int
	for j := len(cols) - 1; j >= 0; j-- {
		if cols[j].Sort.primary() {
			keys = append(keys, j)
		}
	}
	for j := len(cols) - 1; j >= 0; j-- {
		if cols[j].Sort.secondary() {
			keys = append(keys, j)
		}
	}
	return keys
}

func sortRows(rows [][]string, cols []Column) {
	keys := SortKeys(cols)
	if len(keys) == 0 {
		return
	}
	slices.SortStableFunc(rows, func(a, b []string) int {
		for _, k := range keys {
			c := compareCells(a[k], b[k])
			if cols[k].Sort.descending() {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}
