package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateGenerator()...)
	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateGenerator() ValidationErrors {
	var errors ValidationErrors
	g := c.Generator

	if g.MaxCount < 1 {
		errors = append(errors, ValidationError{
			Field:   "generator.max_count",
			Message: "must be at least 1",
		})
	}
	if g.DefaultCount < 1 {
		errors = append(errors, ValidationError{
			Field:   "generator.default_count",
			Message: "must be at least 1",
		})
	}
	if g.DefaultCount > g.MaxCount {
		errors = append(errors, ValidationError{
			Field:   "generator.default_count",
			Message: fmt.Sprintf("must not exceed max_count (%d)", g.MaxCount),
		})
	}
	if g.ItemsMin < 1 {
		errors = append(errors, ValidationError{
			Field:   "generator.items_min",
			Message: "must be at least 1",
		})
	}
	if g.ItemsMax < g.ItemsMin {
		errors = append(errors, ValidationError{
			Field:   "generator.items_max",
			Message: fmt.Sprintf("must be >= items_min (%d)", g.ItemsMin),
		})
	}
	if g.TaxRate < 0 || g.TaxRate >= 1 {
		errors = append(errors, ValidationError{
			Field:   "generator.tax_rate",
			Message: "must be in [0, 1)",
		})
	}

	return errors
}

func (c *Config) validateServer() ValidationErrors {
	var errors ValidationErrors

	if c.Server.Addr == "" {
		errors = append(errors, ValidationError{
			Field:   "server.addr",
			Message: "listen address is required",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level %q (must be debug, info, warn, or error)", c.Logging.Level),
		})
	}

	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid format %q (must be json or text)", c.Logging.Format),
		})
	}

	return errors
}
