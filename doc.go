// Package tbltex turns delimited text into LaTeX tables.
//
// Input is read with [Read] or [ReadFile]: fields are split on runs of
// commas, tabs and spaces, and lines starting with '#' are skipped. The
// first such comment line is kept as a header, where double-quoted fields
// may hold delimiters and "" stands for a literal quote.
//
// # Columns
//
// A [Builder] declares output columns one at a time. Each declaration reads
// the current source field of every row and formats it with the pending
// [Resolution], then attaches the pending [SortOrder]. Both directives are
// cleared after use:
//
//	b := tbltex.NewBuilder(data)
//	b.SetResolution(tbltex.Resolution{Int: tbltex.Unset, Frac: 2})
//	b.SetSort(tbltex.SortAscending)
//	_ = b.Declare("Time")
//	_ = b.Declare("Value")
//	t := b.Build()
//
// Declaring no columns yields one column per source field, labeled from the
// header comment or "Column N".
//
// # Numbers
//
// [FormatValue] re-renders a numeric token with round-half-up on the magnitude
// and carry into a new leading digit:
//
//	tbltex.FormatValue("9.96", tbltex.Resolution{Int: tbltex.Unset, Frac: 1}) // "10.0"
//	tbltex.FormatValue("1.5e2", tbltex.Resolution{Int: tbltex.Unset, Frac: 0}) // "150"
//
// Tokens that are not numbers pass through unchanged, so label cells mixed
// into numeric columns survive.
//
// # Sorting
//
// Rows are ordered by primary columns (u, d), then by secondary columns
// (U, D). Within a tier each column acts as a stable sort pass in
// declaration order, so the last declared column is the most significant.
// Cells compare as integers when both have an integer prefix, otherwise as
// strings.
//
// # Output
//
// [Write] renders a [Table] as [LaTeX] (the default tabular), [Markdown],
// [CSV], [TSV], [HTML], [Text], [JSON] or [YAML].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNoInput] — input missing or unreadable
//   - [ErrIndexOutOfRange] — a row lacks the requested field
//   - [ErrInvalidSort] — unknown sort directive letter
//   - [ErrInvalidResolution] — malformed resolution
//   - [ErrUnsupportedFormat] — unknown output format
//   - [ErrInvalidAlignment] — alignment other than l, c or r
package tbltex
