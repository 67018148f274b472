package tbltex

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}
