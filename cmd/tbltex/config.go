package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/tbltex"
)

// Config holds defaults loaded with --config. Empty fields keep the current
// setting.
type Config struct {
	Format        string `yaml:"format"`
	Document      bool   `yaml:"document"`
	DocumentClass string `yaml:"document_class"`
	Align         string `yaml:"align"` // l, c or r
	Rule          string `yaml:"rule"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) apply(format *tbltex.Format, opts *tbltex.Options) error {
	if c.Format != "" {
		f, err := tbltex.ParseFormat(c.Format)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		*format = f
	}
	if c.Align != "" {
		a, err := tbltex.ParseAlignment(c.Align)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		opts.Align = a
	}
	if c.Document {
		opts.Document = true
	}
	if c.DocumentClass != "" {
		opts.DocumentClass = c.DocumentClass
	}
	if c.Rule != "" {
		opts.Rule = c.Rule
	}
	return nil
}
