// Package config loads the YAML configuration file consumed by the stattab
// demo command. The library itself is configured through functional options;
// this file format only exists so the demo can be driven declaratively.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/stattab/pkg/console"
	"github.com/oakwood-commons/stattab/pkg/stattab"
)

// HeaderEntry declares one column. Label is optional and defaults to Key.
type HeaderEntry struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// File is the on-disk demo configuration.
//
//	title: STATISTICS
//	headers:
//	  - key: reqs
//	    label: requests
//	  - key: errs
//	print_title: true
//	print_stats: true
//	reset_mode: line_count
type File struct {
	Title      *string       `yaml:"title"`
	Headers    []HeaderEntry `yaml:"headers"`
	PrintTitle *bool         `yaml:"print_title"`
	PrintStats *bool         `yaml:"print_stats"`
	ResetMode  string        `yaml:"reset_mode"`
}

// Load reads and validates the configuration at path.
func Load(path string) (File, error) {
	var cfg File
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (f File) validate() error {
	seen := make(map[string]bool, len(f.Headers))
	for _, h := range f.Headers {
		if h.Key == "" {
			return fmt.Errorf("config: header entry with empty key")
		}
		if seen[h.Key] {
			return fmt.Errorf("config: duplicate header key %q", h.Key)
		}
		seen[h.Key] = true
	}
	if _, err := console.ParseResetMode(f.ResetMode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// CollectorHeaders converts the configured header entries to the library's
// constructor form.
func (f File) CollectorHeaders() []stattab.Header {
	out := make([]stattab.Header, len(f.Headers))
	for i, h := range f.Headers {
		out[i] = stattab.Header{Key: h.Key, Label: h.Label}
	}
	return out
}
