package tbltex

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Data is the tokenized input: one slice of fields per data line, plus
// the labels harvested from the first comment line, if any.
type Data struct {
	Header []string
	Rows   [][]string
}

// Width returns the field count of the first row, or zero without rows.
func (d *Data) Width() int {
	if len(d.Rows) == 0 {
		return 0
	}
	return len(d.Rows[0])
}

// Read tokenizes r. Lines starting with '#' are comments; the first one is
// kept as the header. Every other line with at least one field becomes a
// row, with fields split on runs of commas, tabs and spaces.
func Read(r io.Reader) (*Data, error) {
	data := &Data{}
	sawHeader := false
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			if !sawHeader {
				sawHeader = true
				data.Header = splitHeader(line[1:])
			}
			continue
		}
		if fields := splitFields(line); len(fields) > 0 {
			data.Rows = append(data.Rows, fields)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoInput, err)
	}
	return data, nil
}

// ReadFile tokenizes the file at path.
func ReadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoInput, err)
	}
	defer f.Close()
	return Read(f)
}

func isDelim(c byte) bool { return c == ',' || c == '\t' || c == ' ' }

func splitFields(line string) []string {
	var fields []string
	for i := 0; i < len(line); {
		if isDelim(line[i]) {
			i++
			continue
		}
		j := i
		for j < len(line) && !isDelim(line[j]) {
			j++
		}
		fields = append(fields, line[i:j])
		i = j
	}
	return fields
}

// splitHeader splits a header comment like splitFields, except that a
// field may be wrapped in double quotes to hold delimiters, with "" standing
// for a literal quote.
func splitHeader(line string) []string {
	var fields []string
	for i := 0; i < len(line); {
		if isDelim(line[i]) {
			i++
			continue
		}
		var sb strings.Builder
		if line[i] == '"' {
			i++
			for i < len(line) {
				if line[i] == '"' {
					if i+1 < len(line) && line[i+1] == '"' {
						sb.WriteByte('"')
						i += 2
						continue
					}
					i++
					break
				}
				sb.WriteByte(line[i])
				i++
			}
		}
		for i < len(line) && !isDelim(line[i]) {
			sb.WriteByte(line[i])
			i++
		}
		fields = append(fields, sb.String())
	}
	return fields
}
