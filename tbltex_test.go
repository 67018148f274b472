package tbltex_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bjaus/tbltex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

var errWriteFailed = errors.New("write failed")

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return len(p), nil
}

func sample() *tbltex.Table {
	return &tbltex.Table{
		Header: []string{"A", "B"},
		Rows:   [][]string{{"1", "2"}, {"3", "4"}},
	}
}

const sampleLaTeX = "\\begin{tabular}{c|c} \\hline\n" +
	"\tA & B\\\\ \\hline\n" +
	"\t1 & 2\\\\\n" +
	"\t3 & 4\\\\ \\hline\n" +
	"\\end{tabular}\n"

// ============================================================
// Tests
// ============================================================

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tbltex.Format
		wantErr require.ErrorAssertionFunc
	}{
		"latex":    {input: "latex", want: tbltex.LaTeX, wantErr: require.NoError},
		"markdown": {input: "markdown", want: tbltex.Markdown, wantErr: require.NoError},
		"csv":      {input: "csv", want: tbltex.CSV, wantErr: require.NoError},
		"tsv":      {input: "tsv", want: tbltex.TSV, wantErr: require.NoError},
		"html":     {input: "html", want: tbltex.HTML, wantErr: require.NoError},
		"text":     {input: "text", want: tbltex.Text, wantErr: require.NoError},
		"json":     {input: "json", want: tbltex.JSON, wantErr: require.NoError},
		"yaml":     {input: "yaml", want: tbltex.YAML, wantErr: require.NoError},
		"unknown":  {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tbltex.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := tbltex.Formats()
	assert.Equal(t, []tbltex.Format{
		tbltex.LaTeX, tbltex.Markdown, tbltex.CSV, tbltex.TSV,
		tbltex.HTML, tbltex.Text, tbltex.JSON, tbltex.YAML,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, tbltex.LaTeX, tbltex.Formats()[0])
	assert.Equal(t, "latex", tbltex.LaTeX.String())
}

func TestParseAlignment(t *testing.T) {
	t.Parallel()
	for _, letter := range []string{"l", "c", "r"} {
		a, err := tbltex.ParseAlignment(letter)
		require.NoError(t, err)
		assert.Equal(t, letter, a.Letter())
	}
	_, err := tbltex.ParseAlignment("x")
	assert.ErrorIs(t, err, tbltex.ErrInvalidAlignment)
}

func TestWriteUnsupported(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := tbltex.Write(&buf, tbltex.Format("xml"), sample(), tbltex.Options{})
	assert.ErrorIs(t, err, tbltex.ErrUnsupportedFormat)
}

// --- LaTeX ---

func TestWriteLaTeX(t *testing.T) {
	t.Parallel()
	got, err := tbltex.Marshal(tbltex.LaTeX, sample(), tbltex.Options{})
	require.NoError(t, err)
	assert.Equal(t, sampleLaTeX, string(got))
}

func TestWriteLaTeXDocument(t *testing.T) {
	t.Parallel()
	got, err := tbltex.Marshal(tbltex.LaTeX, sample(), tbltex.Options{Document: true})
	require.NoError(t, err)
	want := "\\documentclass{jsarticle}\n\\begin{document}\n" + sampleLaTeX + "\\end{document}\n"
	assert.Equal(t, want, string(got))
}

func TestWriteLaTeXOptions(t *testing.T) {
	t.Parallel()
	opts := tbltex.Options{
		Document:      true,
		DocumentClass: "article",
		Align:         tbltex.AlignRight,
		Rule:          "||",
	}
	got, err := tbltex.Marshal(tbltex.LaTeX, sample(), opts)
	require.NoError(t, err)
	assert.Contains(t, string(got), "\\documentclass{article}\n")
	assert.Contains(t, string(got), "\\begin{tabular}{r||r} \\hline\n")
}

func TestWriteLaTeXNoRows(t *testing.T) {
	t.Parallel()
	table := &tbltex.Table{Header: []string{"A"}}
	got, err := tbltex.Marshal(tbltex.LaTeX, table, tbltex.Options{})
	require.NoError(t, err)
	assert.Equal(t, "\\begin{tabular}{c} \\hline\n\tA\\\\ \\hline \\hline\n\\end{tabular}\n", string(got))
}

func TestWriteLaTeXWriteErrors(t *testing.T) {
	t.Parallel()
	// Document output makes six writes for two rows; each must surface.
	for n := range 6 {
		w := &failAfterN{n: n}
		err := tbltex.Write(w, tbltex.LaTeX, sample(), tbltex.Options{Document: true})
		assert.ErrorIs(t, err, errWriteFailed, "fail after %d writes", n)
	}
}

// --- Markdown ---

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()
	got, err := tbltex.Marshal(tbltex.Markdown, sample(), tbltex.Options{Align: tbltex.AlignLeft})
	require.NoError(t, err)
	want := "| A   | B   |\n" +
		"| --- | --- |\n" +
		"| 1   | 2   |\n" +
		"| 3   | 4   |\n"
	assert.Equal(t, want, string(got))
}

func TestWriteMarkdownAlignment(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		align tbltex.Alignment
		want  string
	}{
		"center": {align: tbltex.AlignCenter, want: "| :-: | :-: |"},
		"right":  {align: tbltex.AlignRight, want: "| --: | --: |"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tbltex.Marshal(tbltex.Markdown, sample(), tbltex.Options{Align: tt.align})
			require.NoError(t, err)
			assert.Contains(t, string(got), tt.want)
		})
	}
}

func TestWriteMarkdownEscapesPipe(t *testing.T) {
	t.Parallel()
	table := &tbltex.Table{Header: []string{"A"}, Rows: [][]string{{"a|b"}}}
	got, err := tbltex.Marshal(tbltex.Markdown, table, tbltex.Options{Align: tbltex.AlignLeft})
	require.NoError(t, err)
	assert.Contains(t, string(got), `| a\|b |`)
}

// --- CSV / TSV ---

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	table := &tbltex.Table{Header: []string{"A", "B"}, Rows: [][]string{{"hello, world", "2"}}}
	got, err := tbltex.Marshal(tbltex.CSV, table, tbltex.Options{})
	require.NoError(t, err)
	assert.Equal(t, "A,B\n\"hello, world\",2\n", string(got))
}

func TestWriteTSV(t *testing.T) {
	t.Parallel()
	got, err := tbltex.Marshal(tbltex.TSV, sample(), tbltex.Options{})
	require.NoError(t, err)
	assert.Equal(t, "A\tB\n1\t2\n3\t4\n", string(got))
}

// --- HTML ---

func TestWriteHTML(t *testing.T) {
	t.Parallel()
	table := &tbltex.Table{Header: []string{"A"}, Rows: [][]string{{"<b>"}}}
	got, err := tbltex.Marshal(tbltex.HTML, table, tbltex.Options{})
	require.NoError(t, err)
	out := string(got)
	assert.Contains(t, out, "<table>\n  <thead>\n    <tr>\n")
	assert.Contains(t, out, `<th style="text-align: center">A</th>`)
	assert.Contains(t, out, `<td style="text-align: center">&lt;b&gt;</td>`)
	assert.Contains(t, out, "</tbody>\n</table>\n")
}

func TestWriteHTMLLeft(t *testing.T) {
	t.Parallel()
	got, err := tbltex.Marshal(tbltex.HTML, sample(), tbltex.Options{Align: tbltex.AlignLeft})
	require.NoError(t, err)
	assert.Contains(t, string(got), "<td>1</td>")
	assert.NotContains(t, string(got), "style=")
}

// --- Text ---

func TestWriteText(t *testing.T) {
	t.Parallel()
	got, err := tbltex.Marshal(tbltex.Text, sample(), tbltex.Options{})
	require.NoError(t, err)
	want := "╭───┬───╮\n" +
		"│ A │ B │\n" +
		"├───┼───┤\n" +
		"│ 1 │ 2 │\n" +
		"│ 3 │ 4 │\n" +
		"╰───┴───╯\n"
	assert.Equal(t, want, string(got))
}

func TestWriteTextWideCells(t *testing.T) {
	t.Parallel()
	table := &tbltex.Table{Header: []string{"Name"}, Rows: [][]string{{"你好"}, {"x"}}}
	got, err := tbltex.Marshal(tbltex.Text, table, tbltex.Options{Align: tbltex.AlignRight})
	require.NoError(t, err)
	assert.Contains(t, string(got), "│ 你好 │\n")
	assert.Contains(t, string(got), "│    x │\n")
}

// --- JSON / YAML ---

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	got, err := tbltex.Marshal(tbltex.JSON, sample(), tbltex.Options{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"header":["A","B"],"rows":[["1","2"],["3","4"]]}`, string(got))
}

func TestWriteJSONKeepsMarkup(t *testing.T) {
	t.Parallel()
	table := &tbltex.Table{Header: []string{"A"}, Rows: [][]string{{`$1<2$`}}}
	got, err := tbltex.Marshal(tbltex.JSON, table, tbltex.Options{})
	require.NoError(t, err)
	assert.Contains(t, string(got), `"$1<2$"`)
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	got, err := tbltex.Marshal(tbltex.YAML, sample(), tbltex.Options{})
	require.NoError(t, err)
	assert.YAMLEq(t, "header: [A, B]\nrows: [['1', '2'], ['3', '4']]\n", string(got))
}

func TestMarshalError(t *testing.T) {
	t.Parallel()
	got, err := tbltex.Marshal(tbltex.Format("xml"), sample(), tbltex.Options{})
	require.Error(t, err)
	assert.Nil(t, got)
}

// --- End to end ---

func TestEndToEnd(t *testing.T) {
	t.Parallel()
	data, err := tbltex.Read(bytes.NewBufferString("1,2\n3,4\n"))
	require.NoError(t, err)
	b := tbltex.NewBuilder(data)
	b.SetIndex(0)
	require.NoError(t, b.Declare("A"))
	b.SetIndex(1)
	require.NoError(t, b.Declare("B"))
	got, err := tbltex.Marshal(tbltex.LaTeX, b.Build(), tbltex.Options{})
	require.NoError(t, err)
	assert.Equal(t, sampleLaTeX, string(got))
}
