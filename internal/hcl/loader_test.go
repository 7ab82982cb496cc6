package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mv/gridweaver/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeSchema(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSchema(t *testing.T) {
	path := writeSchema(t, "schema.hcl", `
device "worker" {
  instancing = "node"

  property "weight" {
    type    = "uint32_t"
    default = 1
  }

  state "acc" {
    length = 4
  }
}

device "collector" {
  instancing = "supervisor"
}

message "report" {
  sources      = ["worker"]
  destinations = ["collector"]

  field "value" {}
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, model.Devices, 2)
	worker := model.Devices[0]
	assert.Equal(t, "worker", worker.ID)
	assert.Equal(t, config.GranularityNode, worker.Instancing)

	require.Len(t, worker.Properties, 1)
	weight := worker.Properties[0]
	assert.Equal(t, "weight", weight.Name)
	assert.Equal(t, 1, weight.Length)
	require.NotNil(t, weight.Default)
	assert.True(t, weight.Default.RawEquals(cty.NumberIntVal(1)))

	require.Len(t, worker.State, 1)
	assert.Equal(t, 4, worker.State[0].Length)
	assert.Nil(t, worker.State[0].Default)

	require.Len(t, model.Messages, 1)
	report := model.Messages[0]
	assert.Equal(t, []string{"worker"}, report.Sources)
	assert.Equal(t, []string{"collector"}, report.Destinations)
	require.Len(t, report.Fields, 1)
	assert.Equal(t, config.DefaultFieldType, report.Fields[0].Type,
		"omitted field type falls back to the default scalar type")
	assert.Equal(t, 1, report.Fields[0].Length, "omitted length means scalar")
}

func TestLoadDirectoryMergesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "devices.hcl"), []byte(`
device "a" { instancing = "tile" }
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "messages.hcl"), []byte(`
message "m" {
  sources      = ["a"]
  destinations = ["a"]
}
`), 0o644))

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, model.Devices, 1)
	assert.Len(t, model.Messages, 1)
}

func TestLoadErrors(t *testing.T) {
	t.Run("invalid granularity", func(t *testing.T) {
		path := writeSchema(t, "bad.hcl", `device "d" { instancing = "galaxy" }`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "unknown instancing granularity")
	})

	t.Run("unparseable file", func(t *testing.T) {
		path := writeSchema(t, "broken.hcl", `device "d" {`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("missing path yields empty model", func(t *testing.T) {
		model, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
		require.NoError(t, err)
		assert.Empty(t, model.Devices)
	})
}

func TestLoadExplicitZeroLengthSurvivesTranslation(t *testing.T) {
	// The loader must not mask an explicit zero; rejecting it is the
	// registry's job.
	path := writeSchema(t, "zero.hcl", `
device "d" {
  instancing = "node"
  property "p" { length = 0 }
}
`)
	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, model.Devices[0].Properties[0].Length)
}
