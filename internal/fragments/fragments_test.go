package fragments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLookup(t *testing.T) {
	m := Map{"worker_shared": "uint32_t total;"}

	text, ok := m.Fragment("worker_shared")
	assert.True(t, ok)
	assert.Equal(t, "uint32_t total;", text)

	_, ok = m.Fragment("missing")
	assert.False(t, ok)

	_, ok = None.Fragment("anything")
	assert.False(t, ok)
}

func TestDirLookup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "worker_receive_pulse.c"),
		[]byte("state->count++;"), 0o644))

	d := NewDir(dir)

	text, ok := d.Fragment("worker_receive_pulse")
	assert.True(t, ok)
	assert.Equal(t, "state->count++;", text)

	// Absence is not an error, just a miss.
	_, ok = d.Fragment("worker_idle")
	assert.False(t, ok)
}

func TestNamingConvention(t *testing.T) {
	assert.Equal(t, "worker_shared", SharedID("worker"))
	assert.Equal(t, "worker_rts", ReadyToSendID("worker"))
	assert.Equal(t, "worker_idle", IdleID("worker"))
	assert.Equal(t, "worker_receive_pulse", ReceiveID("worker", "pulse"))
	assert.Equal(t, "worker_send_pulse", SendID("worker", "pulse"))
}
