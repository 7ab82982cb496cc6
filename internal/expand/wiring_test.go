package expand

import (
	"testing"

	"github.com/mv/gridweaver/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestResolveSameDeviceType(t *testing.T) {
	assert.Equal(t, ModeTopologyFollowing,
		Resolve(config.GranularityNode, config.GranularityNode, true),
		"node-node self-pairing follows the topology")

	// Every other self-pairing is explicitly unsupported, never dropped.
	for _, g := range []config.Granularity{
		config.GranularityTile,
		config.GranularityUnique,
		config.GranularitySupervisor,
	} {
		assert.Equal(t, ModeUnsupported, Resolve(g, g, true), "self-pairing at %s", g)
	}
}

func TestResolveDifferentDeviceTypes(t *testing.T) {
	node := config.GranularityNode
	tile := config.GranularityTile
	unique := config.GranularityUnique
	supervisor := config.GranularitySupervisor

	cases := []struct {
		name     string
		src, dst config.Granularity
		want     Mode
	}{
		{"node to node", node, node, ModePerTileBroadcastAll},
		{"node to tile", node, tile, ModeFanIn},
		{"node to unique", node, unique, ModeFanInGlobal},
		{"node to supervisor", node, supervisor, ModeFanInGlobal},
		{"tile to node", tile, node, ModeFanOut},
		{"tile to tile", tile, tile, ModePerTile1to1},
		{"tile to unique", tile, unique, ModeFanInGlobal},
		{"tile to supervisor", tile, supervisor, ModeFanInGlobal},
		{"unique to node", unique, node, ModeFanOutGlobal},
		{"unique to tile", unique, tile, ModeFanOutGlobal},
		{"unique to supervisor", unique, supervisor, ModeSingleton},
		{"supervisor to node", supervisor, node, ModeFanOutGlobal},
		{"supervisor to tile", supervisor, tile, ModeFanOutGlobal},
		{"supervisor to unique", supervisor, unique, ModeSingleton},
		{"unique to unique", unique, unique, ModeSingleton},
		{"supervisor to supervisor", supervisor, supervisor, ModeSingleton},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.src, tc.dst, false))
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "topology-following", ModeTopologyFollowing.String())
	assert.Equal(t, "unsupported", ModeUnsupported.String())
	assert.Equal(t, "fan-in-global", ModeFanInGlobal.String())
}
