// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "path/filepath"

// Config holds the generator options. Fields map one-to-one onto CLI flags
// and onto the keys of the optional JSON/YAML config file.
type Config struct {
	// Source lists the source directories the reflection tool analyzes.
	Source []string `json:"source,omitempty" yaml:"source,omitempty" mapstructure:"source"`

	// ExistingOutput is the path to a reflection JSON file produced earlier.
	// When set, the reflection tool is not run.
	ExistingOutput string `json:"existingOutput,omitempty" yaml:"existingOutput,omitempty" mapstructure:"existingOutput"`

	// Custom is the path to the custom docs definition file (.json, .yml, .yaml).
	Custom string `json:"custom,omitempty" yaml:"custom,omitempty" mapstructure:"custom"`

	// Root is the project root that custom doc paths are recorded relative to.
	Root string `json:"root,omitempty" yaml:"root,omitempty" mapstructure:"root"`

	// Output is the documentation file to write. Empty means the result is
	// not persisted.
	Output string `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`

	// Spaces is the JSON indentation width; 0 writes compact JSON.
	Spaces int `json:"spaces,omitempty" yaml:"spaces,omitempty" mapstructure:"spaces"`

	// TSConfig is the type-system project file passed to the reflection tool.
	TSConfig string `json:"tsconfig,omitempty" yaml:"tsconfig,omitempty" mapstructure:"tsconfig"`

	// Verbose enables debug logging.
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty" mapstructure:"verbose"`

	// ConfigFile is the JSON/YAML file the options above were read from.
	ConfigFile string `json:"config,omitempty" yaml:"config,omitempty" mapstructure:"config"`
}

// Normalize cleans every path and applies defaults: Root becomes "." when
// unset and a negative Spaces becomes 0. It does not merge config files.
func (c Config) Normalize() Config {
	if len(c.Source) > 0 {
		src := make([]string, len(c.Source))
		for i, s := range c.Source {
			src[i] = filepath.Clean(s)
		}
		c.Source = src
	}
	c.ExistingOutput = cleanOptional(c.ExistingOutput)
	c.Custom = cleanOptional(c.Custom)
	c.Output = cleanOptional(c.Output)
	c.TSConfig = cleanOptional(c.TSConfig)
	if c.Root == "" {
		c.Root = "."
	}
	c.Root = filepath.Clean(c.Root)
	if c.Spaces < 0 {
		c.Spaces = 0
	}
	return c
}

func cleanOptional(p string) string {
	if p == "" {
		return ""
	}
	return filepath.Clean(p)
}
