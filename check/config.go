// SPDX-License-Identifier: GPL-3.0-or-later

package check

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v2"
)

// Config is the optional per-run configuration.
type Config struct {
	// Report overrides the report file path.
	Report string `yaml:"report,omitempty"`

	// Units adds multiplier-only unit rules to the normalizer.
	Units map[string]int64 `yaml:"units,omitempty"`

	// Include/Exclude select which extracted keys take part in the
	// comparison: a key is kept when it matches any include (or the
	// include list is empty) and matches no exclude.
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file '%s': %w", path, err)
	}

	return &cfg, nil
}

type keyFilter struct {
	includes []*regexp.Regexp
	excludes []*regexp.Regexp
}

func newKeyFilter(include, exclude []string) (*keyFilter, error) {
	f := &keyFilter{}

	for _, expr := range include {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile include selector '%s': %w", expr, err)
		}
		f.includes = append(f.includes, re)
	}

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile exclude selector '%s': %w", expr, err)
		}
		f.excludes = append(f.excludes, re)
	}

	return f, nil
}

func (f *keyFilter) match(key string) bool {
	if len(f.includes) > 0 {
		ok := false
		for _, re := range f.includes {
			if re.MatchString(key) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	for _, re := range f.excludes {
		if re.MatchString(key) {
			return false
		}
	}

	return true
}
