// Package config carries the translator settings that are threaded,
// unchanged, through to the rules that ask for them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings configures one post-processing run.
type Settings struct {
	// ExplicitTypeArguments keeps inferable type arguments written out
	// instead of removing them.
	ExplicitTypeArguments bool `yaml:"explicit_type_arguments"`

	// Disabled lists rule names to skip.
	Disabled []string `yaml:"disabled"`
}

// Default returns the settings used when no configuration file is given.
func Default() *Settings {
	return &Settings{}
}

// Load reads settings from a YAML file. An empty path yields the defaults.
func Load(path string) (*Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}
	return s, nil
}

// RuleDisabled reports whether the named rule is switched off.
func (s *Settings) RuleDisabled(name string) bool {
	for _, d := range s.Disabled {
		if d == name {
			return true
		}
	}
	return false
}
