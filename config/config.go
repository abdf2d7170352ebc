// Package config stores the defaults of the command line tool,
// loaded from a YAML or TOML file and the environment.
package config

import (
	"github.com/benoitkugler/gridlayout/measure"
	"github.com/benoitkugler/gridlayout/utils"
)

// Config holds the settings used when the document
// does not specify them.
type Config struct {
	// Width of the grid container, used when the
	// container has no width.
	Width utils.Fl `yaml:"width" toml:"width" json:"width"`
	// Metrics is "font" (fixed 7x13 face, scaled to FontSize)
	// or "cells" (terminal cells).
	Metrics  string   `yaml:"metrics" toml:"metrics" json:"metrics"`
	FontSize utils.Fl `yaml:"font_size" toml:"font_size" json:"font_size"`
	// Format is the output format : "text", "yaml" or "json".
	Format string `yaml:"format" toml:"format" json:"format"`
	// Precision is the number of decimals printed.
	Precision int `yaml:"precision" toml:"precision" json:"precision"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Width:     800,
		Metrics:   "font",
		FontSize:  13,
		Format:    "text",
		Precision: 2,
	}
}

// TextMetrics returns the measure used for text content.
func (c *Config) TextMetrics() measure.Metrics {
	if c.Metrics == "cells" {
		return measure.CellMetrics{}
	}
	return measure.DefaultMetrics(c.FontSize)
}
