package config

import (
	"fmt"
	"strings"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate runs all the checks, collecting the failures.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Width <= 0 {
		errs = append(errs, fmt.Sprintf("width %g must be positive", cfg.Width))
	}
	switch cfg.Metrics {
	case "font", "cells":
	default:
		errs = append(errs, fmt.Sprintf("metrics %q must be \"font\" or \"cells\"", cfg.Metrics))
	}
	if cfg.FontSize <= 0 {
		errs = append(errs, fmt.Sprintf("font_size %g must be positive", cfg.FontSize))
	}
	switch cfg.Format {
	case "text", "yaml", "json":
	default:
		errs = append(errs, fmt.Sprintf("format %q must be \"text\", \"yaml\" or \"json\"", cfg.Format))
	}
	if cfg.Precision < 0 || cfg.Precision > 6 {
		errs = append(errs, fmt.Sprintf("precision %d must be between 0 and 6", cfg.Precision))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
