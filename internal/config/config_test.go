package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 10000, cfg.Generator.MaxCount)
	assert.Equal(t, 10, cfg.Generator.DefaultCount)
	assert.Equal(t, 1, cfg.Generator.ItemsMin)
	assert.Equal(t, 5, cfg.Generator.ItemsMax)
	assert.False(t, cfg.Generator.StrictReferences)
	assert.InDelta(t, 0.08, cfg.Generator.TaxRate, 0.0001)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storegen.yaml")
	content := `
generator:
  max_count: 500
  default_count: 25
  strict_references: true
  tax_rate: 0.2
server:
  addr: ":9090"
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Generator.MaxCount)
	assert.Equal(t, 25, cfg.Generator.DefaultCount)
	assert.True(t, cfg.Generator.StrictReferences)
	assert.InDelta(t, 0.2, cfg.Generator.TaxRate, 0.0001)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Omitted keys keep their defaults.
	assert.Equal(t, 1, cfg.Generator.ItemsMin)
	assert.Equal(t, 5, cfg.Generator.ItemsMax)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefault_MissingFileFallsBack(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOrDefault_BrokenFileStillFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator: [not a map"), 0o644))

	_, err := LoadOrDefault(path)
	assert.Error(t, err)
}

func TestLoad_EnvVarSubstitution(t *testing.T) {
	t.Setenv("STOREGEN_TEST_ADDR", ":7070")

	dir := t.TempDir()
	path := filepath.Join(dir, "storegen.yaml")
	content := `
server:
  addr: ${STOREGEN_TEST_ADDR}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides("debug", "json", 200, 15, true)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 200, cfg.Generator.MaxCount)
	assert.Equal(t, 15, cfg.Generator.DefaultCount)
	assert.True(t, cfg.Generator.StrictReferences)
}

func TestApplyOverrides_ZeroValuesIgnored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides("", "", 0, 0, false)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErr  bool
		errField string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:     "max_count below 1",
			mutate:   func(c *Config) { c.Generator.MaxCount = 0 },
			wantErr:  true,
			errField: "generator.max_count",
		},
		{
			name:     "default_count below 1",
			mutate:   func(c *Config) { c.Generator.DefaultCount = 0 },
			wantErr:  true,
			errField: "generator.default_count",
		},
		{
			name: "default_count above max_count",
			mutate: func(c *Config) {
				c.Generator.MaxCount = 10
				c.Generator.DefaultCount = 11
			},
			wantErr:  true,
			errField: "generator.default_count",
		},
		{
			name: "items_max below items_min",
			mutate: func(c *Config) {
				c.Generator.ItemsMin = 3
				c.Generator.ItemsMax = 2
			},
			wantErr:  true,
			errField: "generator.items_max",
		},
		{
			name:     "tax_rate out of range",
			mutate:   func(c *Config) { c.Generator.TaxRate = 1.5 },
			wantErr:  true,
			errField: "generator.tax_rate",
		},
		{
			name:     "empty server addr",
			mutate:   func(c *Config) { c.Server.Addr = "" },
			wantErr:  true,
			errField: "server.addr",
		},
		{
			name:     "invalid log level",
			mutate:   func(c *Config) { c.Logging.Level = "verbose" },
			wantErr:  true,
			errField: "logging.level",
		},
		{
			name:     "invalid log format",
			mutate:   func(c *Config) { c.Logging.Format = "xml" },
			wantErr:  true,
			errField: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errField)
		})
	}
}
