package app

import (
	"fmt"
	"log/slog"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SchemaPath   string
	SchemaFormat string
	Topology     string
	Tiles        int
	EnableNodes  []string
	DisableNodes []string
	FragmentsDir string
	OutPath      string
	Analyze      bool
	ImpactNodes  int
	ImpactTrials int
	Workers      int
	LogFormat    string
	LogLevel     string

	// Level is the parsed form of LogLevel, filled in by NewConfig.
	Level slog.Level
}

// NewConfig validates a raw configuration and returns it, applying defaults
// where fields were left zero.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SchemaPath == "" {
		return nil, fmt.Errorf("schema path must not be empty")
	}
	switch cfg.SchemaFormat {
	case "":
		cfg.SchemaFormat = "hcl"
	case "hcl", "toml":
		// valid
	default:
		return nil, fmt.Errorf("invalid schema-format %q: must be 'hcl' or 'toml'", cfg.SchemaFormat)
	}
	if cfg.Tiles < 0 {
		return nil, fmt.Errorf("tiles must not be negative, got %d", cfg.Tiles)
	}
	if cfg.ImpactNodes < 0 {
		return nil, fmt.Errorf("impact node count must not be negative, got %d", cfg.ImpactNodes)
	}
	if cfg.ImpactTrials < 1 {
		cfg.ImpactTrials = 10
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Topology == "" {
		return nil, fmt.Errorf("topology spec must not be empty")
	}
	switch cfg.LogLevel {
	case "", "info":
		cfg.Level = slog.LevelInfo
	case "debug":
		cfg.Level = slog.LevelDebug
	case "warn":
		cfg.Level = slog.LevelWarn
	case "error":
		cfg.Level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	return &cfg, nil
}
