package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"schema.hcl"}, &out)
	require.NoError(t, err)
	require.False(t, exit)
	require.NotNil(t, cfg)

	assert.Equal(t, "schema.hcl", cfg.SchemaPath)
	assert.Equal(t, "hcl", cfg.SchemaFormat)
	assert.Equal(t, "ring:4", cfg.Topology)
	assert.Equal(t, 1, cfg.Tiles)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 10, cfg.ImpactTrials)
	assert.Zero(t, cfg.ImpactNodes)
	assert.Empty(t, cfg.EnableNodes)
	assert.Empty(t, cfg.DisableNodes)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{
		"-schema", "hw/schema.toml",
		"-schema-format", "toml",
		"-topology", "grid:4x4",
		"-tiles", "3",
		"-enable", "x0y0, x1y0,x0y1",
		"-disable", "x1y1",
		"-workers", "8",
		"-impact", "2",
		"-trials", "50",
		"-out", "graph.xml",
		"-analyze",
	}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "hw/schema.toml", cfg.SchemaPath)
	assert.Equal(t, "toml", cfg.SchemaFormat)
	assert.Equal(t, "grid:4x4", cfg.Topology)
	assert.Equal(t, 3, cfg.Tiles)
	assert.Equal(t, []string{"x0y0", "x1y0", "x0y1"}, cfg.EnableNodes)
	assert.Equal(t, []string{"x1y1"}, cfg.DisableNodes)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 2, cfg.ImpactNodes)
	assert.Equal(t, 50, cfg.ImpactTrials)
	assert.Equal(t, "graph.xml", cfg.OutPath)
	assert.True(t, cfg.Analyze)
}

func TestParseShorthandPath(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-s", "short.hcl"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "short.hcl", cfg.SchemaPath)
}

func TestParseNoPathPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"bad log format", []string{"-log-format", "yaml", "x.hcl"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "loud", "x.hcl"}, "invalid log-level"},
		{"bad schema format", []string{"-schema-format", "ini", "x.hcl"}, "invalid schema-format"},
		{"negative tiles", []string{"-tiles", "-2", "x.hcl"}, "tiles must not be negative"},
		{"negative impact", []string{"-impact", "-1", "x.hcl"}, "impact node count"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)
			require.Error(t, err)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "want *ExitError, got %T", err)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
