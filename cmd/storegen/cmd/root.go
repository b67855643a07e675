package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/storegen/internal/config"
	"github.com/dbsmedya/storegen/internal/logger"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile      string
	logLevel     string
	logFormat    string
	maxCount     int
	defaultCount int
	strictRefs   bool
)

var rootCmd = &cobra.Command{
	Use:   "storegen",
	Short: "Deterministic e-commerce dataset generator",
	Long: `A CLI tool and HTTP endpoint that synthesizes a realistic, internally
consistent e-commerce dataset (users, products, orders, payments,
logistics, engagement, analytics) for dashboarding and ETL testing.

Features:
  - Reproducible output: the same seed always yields the same data
  - Referential integrity via an entity dependency graph
  - 19 entity types with automatic prerequisite generation
  - JSON, CSV, and XML output`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "storegen.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Generator overrides
	rootCmd.PersistentFlags().IntVar(&maxCount, "max-count", 0,
		"Override maximum records per request")
	rootCmd.PersistentFlags().IntVar(&defaultCount, "default-count", 0,
		"Override record count for auto-generated prerequisites")
	rootCmd.PersistentFlags().BoolVar(&strictRefs, "strict", false,
		"Fail on missing identifier pools instead of minting orphan references")
}

// loadRuntime loads configuration, applies CLI overrides, and builds the
// logger. Shared by every subcommand that runs the engine.
func loadRuntime() (*config.Config, *logger.Logger, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyOverrides(logLevel, logFormat, maxCount, defaultCount, strictRefs)

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}
