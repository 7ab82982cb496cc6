package app

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(Config{SchemaPath: "x.hcl", Topology: "ring:4"})
	require.NoError(t, err)

	assert.Equal(t, "hcl", cfg.SchemaFormat)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 10, cfg.ImpactTrials)
	assert.Equal(t, slog.LevelInfo, cfg.Level, "empty log level defaults to info")
}

func TestNewConfigLogLevels(t *testing.T) {
	levels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range levels {
		cfg, err := NewConfig(Config{SchemaPath: "x.hcl", Topology: "ring:4", LogLevel: name})
		require.NoError(t, err, "level %s", name)
		assert.Equal(t, want, cfg.Level, "level %s", name)
	}

	_, err := NewConfig(Config{SchemaPath: "x.hcl", Topology: "ring:4", LogLevel: "loud"})
	assert.ErrorContains(t, err, "invalid log-level")
}

func TestNewConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"empty schema path", Config{Topology: "ring:4"}, "schema path"},
		{"bad schema format", Config{SchemaPath: "x", Topology: "ring:4", SchemaFormat: "ini"}, "invalid schema-format"},
		{"negative tiles", Config{SchemaPath: "x", Topology: "ring:4", Tiles: -1}, "tiles must not be negative"},
		{"negative impact", Config{SchemaPath: "x", Topology: "ring:4", ImpactNodes: -1}, "impact node count"},
		{"empty topology", Config{SchemaPath: "x"}, "topology spec"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.cfg)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}
