// Package config provides configuration structures and loading for storegen.
package config

// Config represents the complete application configuration.
type Config struct {
	Generator GeneratorConfig `yaml:"generator" mapstructure:"generator"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// GeneratorConfig represents the data-generation engine settings.
type GeneratorConfig struct {
	MaxCount         int     `yaml:"max_count" mapstructure:"max_count"`                 // Upper bound on requested record counts
	DefaultCount     int     `yaml:"default_count" mapstructure:"default_count"`         // Count used when auto-generating prerequisites
	ItemsMin         int     `yaml:"items_min" mapstructure:"items_min"`                 // Minimum line items per order/cart
	ItemsMax         int     `yaml:"items_max" mapstructure:"items_max"`                 // Maximum line items per order/cart
	StrictReferences bool    `yaml:"strict_references" mapstructure:"strict_references"` // Fail on empty identifier pools instead of minting orphans
	TaxRate          float64 `yaml:"tax_rate" mapstructure:"tax_rate"`                   // Applied to order subtotals
}

// ServerConfig represents the HTTP endpoint settings.
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			MaxCount:         10000,
			DefaultCount:     10,
			ItemsMin:         1,
			ItemsMax:         5,
			StrictReferences: false,
			TaxRate:          0.08,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat string, maxCount, defaultCount int, strict bool) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if maxCount > 0 {
		c.Generator.MaxCount = maxCount
	}
	if defaultCount > 0 {
		c.Generator.DefaultCount = defaultCount
	}
	if strict {
		c.Generator.StrictReferences = true
	}
}
