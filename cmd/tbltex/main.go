// Package main provides the tbltex command.
//
// Usage:
//
//	tbltex [options] [index] label ...
//
// Arguments are processed in order. Options set state for the labels that
// follow them:
//
//	tbltex -f data.txt -r .2 Time -s d Value   Two columns, Value sorted descending
//	tbltex -d < data.txt                       All columns, wrapped in a document
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/bjaus/tbltex"
)

const usage = `tbltex - render delimited text as a LaTeX table

Usage:
  tbltex [options] [index] label ...

Options:
  -f, --file <path>         Read input from path (default: standard input)
  -s, --sort <u|d|U|D>      Sort by the next column: u/d ascending/descending,
                            U/D as secondary keys
  -r, --resolution <i.f>    Round the next column to i integer and f fraction
                            digits; either part may be omitted
  -d, --document            Wrap the table in a LaTeX document
  -t, --transverse          Accepted, not implemented
  -o, --output <format>     Output format: latex, markdown, csv, tsv, html,
                            text, json, yaml (default: latex)
  -c, --config <path>       Load defaults from a YAML file
  -v, --verbose             Log progress to standard error
  -h, --help                Show this help message

An integer argument selects the 0-based source field for the next label.
Any other argument declares an output column with that label. Without
labels, every source field becomes a column.
`

var errMissingArgument = errors.New("missing argument")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := execute(args, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "tbltex: %v\n", err)
		return 1
	}
	return 0
}

// session is the state accumulated while walking the arguments.
type session struct {
	stdin   io.Reader
	logger  *log.Logger
	builder *tbltex.Builder
	format  tbltex.Format
	opts    tbltex.Options
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	s := &session{
		stdin:   stdin,
		logger:  log.New(io.Discard, "tbltex: ", 0),
		builder: tbltex.NewBuilder(nil),
		format:  tbltex.LaTeX,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		value := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("%w: %s requires a value", errMissingArgument, arg)
			}
			i++
			return args[i], nil
		}

		switch arg {
		case "-h", "--help":
			_, err := io.WriteString(stdout, usage)
			return err
		case "-v", "--verbose":
			s.logger.SetOutput(stderr)
		case "-f", "--file":
			path, err := value()
			if err != nil {
				return err
			}
			data, err := tbltex.ReadFile(path)
			if err != nil {
				return err
			}
			s.logger.Printf("read %d rows from %s", len(data.Rows), path)
			s.builder.Load(data)
		case "-s", "--sort":
			v, err := value()
			if err != nil {
				return err
			}
			order, err := tbltex.ParseSortOrder(v)
			if err != nil {
				return err
			}
			s.builder.SetSort(order)
		case "-r", "--resolution":
			v, err := value()
			if err != nil {
				return err
			}
			res, err := tbltex.ParseResolution(v)
			if err != nil {
				return err
			}
			s.builder.SetResolution(res)
		case "-d", "--document":
			s.opts.Document = true
		case "-t", "--transverse":
			s.logger.Printf("transverse output is not implemented; ignoring %s", arg)
		case "-o", "--output":
			v, err := value()
			if err != nil {
				return err
			}
			f, err := tbltex.ParseFormat(v)
			if err != nil {
				return err
			}
			s.format = f
		case "-c", "--config":
			path, err := value()
			if err != nil {
				return err
			}
			cfg, err := LoadConfig(path)
			if err != nil {
				return err
			}
			if err := cfg.apply(&s.format, &s.opts); err != nil {
				return err
			}
			s.logger.Printf("loaded config %s", path)
		default:
			if n, err := strconv.Atoi(arg); err == nil {
				s.builder.SetIndex(n)
				continue
			}
			if err := s.declare(arg); err != nil {
				return err
			}
		}
	}

	if err := s.load(); err != nil {
		return err
	}
	t := s.builder.Build()
	s.logger.Printf("writing %d rows, %d columns as %s", len(t.Rows), len(t.Header), s.format)
	return tbltex.Write(stdout, s.format, t, s.opts)
}

// load reads standard input unless a file has already been loaded.
func (s *session) load() error {
	if s.builder.Loaded() {
		return nil
	}
	if s.stdin == nil {
		return tbltex.ErrNoInput
	}
	data, err := tbltex.Read(s.stdin)
	if err != nil {
		return err
	}
	s.logger.Printf("read %d rows from standard input", len(data.Rows))
	s.builder.Load(data)
	return nil
}

func (s *session) declare(label string) error {
	if err := s.load(); err != nil {
		return err
	}
	index := s.builder.Index()
	if err := s.builder.Declare(label); err != nil {
		return err
	}
	s.logger.Printf("column %q from field %d", label, index)
	return nil
}
