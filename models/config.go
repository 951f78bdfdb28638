// Package models defines data structures for configuration and sorting.
package models

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// SortConfig holds the full set of sorting options for one invocation.
// Every field is an independent boolean; all combinations are legal, some
// are documented no-ops (e.g. DictionaryOrder with UseEntireLine). The
// config is created once and never mutated, so it is safe to share across
// workers.
type SortConfig struct {
	IgnoreCase      bool
	UseEntireLine   bool
	DictionaryOrder bool
	Reverse         bool
	Stable          bool
	RightAlign      bool
	ExcludeNoWord   bool
	WordOnly        bool
	Normalize       bool
}

// FlagSummary returns a short comma-separated list of the enabled options,
// e.g. "ignore-case,stable". Empty when everything is default.
func (c SortConfig) FlagSummary() string {
	var on []string
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"ignore-case", c.IgnoreCase},
		{"line", c.UseEntireLine},
		{"dictionary-order", c.DictionaryOrder},
		{"reverse", c.Reverse},
		{"stable", c.Stable},
		{"right-align", c.RightAlign},
		{"exclude-no-word", c.ExcludeNoWord},
		{"word-only", c.WordOnly},
		{"normalize", c.Normalize},
	} {
		if f.set {
			on = append(on, f.name)
		}
	}
	return strings.Join(on, ",")
}

// Defaults is the optional YAML defaults file. Any option present in the
// file becomes the starting value for the matching CLI flag; flags given on
// the command line always win.
type Defaults struct {
	IgnoreCase      bool `yaml:"ignore_case"`
	UseEntireLine   bool `yaml:"line"`
	DictionaryOrder bool `yaml:"dictionary_order"`
	Reverse         bool `yaml:"reverse"`
	Stable          bool `yaml:"stable"`
	RightAlign      bool `yaml:"right_align"`
	ExcludeNoWord   bool `yaml:"exclude_no_word"`
	WordOnly        bool `yaml:"word_only"`
	Normalize       bool `yaml:"normalize"`
	Workers         int  `yaml:"workers"`
	Track           bool `yaml:"track"`
}

// LoadDefaults reads a YAML defaults file. A missing file is not an error;
// it yields the zero Defaults with Workers set to the CPU count.
func LoadDefaults(path string) (Defaults, error) {
	d := Defaults{Workers: runtime.NumCPU()}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, fmt.Errorf("failed to read defaults file: %w", err)
	}

	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("failed to parse defaults file %s: %w", path, err)
	}
	if d.Workers <= 0 {
		d.Workers = runtime.NumCPU()
	}
	return d, nil
}

// Config converts the defaults into a starting SortConfig.
func (d Defaults) Config() SortConfig {
	return SortConfig{
		IgnoreCase:      d.IgnoreCase,
		UseEntireLine:   d.UseEntireLine,
		DictionaryOrder: d.DictionaryOrder,
		Reverse:         d.Reverse,
		Stable:          d.Stable,
		RightAlign:      d.RightAlign,
		ExcludeNoWord:   d.ExcludeNoWord,
		WordOnly:        d.WordOnly,
		Normalize:       d.Normalize,
	}
}
