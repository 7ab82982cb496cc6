package expand

import (
	"github.com/mv/gridweaver/internal/config"
	"github.com/mv/gridweaver/internal/topology"
)

// Instances returns the ordered concrete instance set implied by a device
// type's granularity. Node granularity yields tileCount × |nodes| instances,
// tile-major then node-minor; tile granularity one per tile; unique and
// supervisor exactly one regardless of tile count. An empty topology or a
// zero tile count legitimately yields an empty set for the replicated
// granularities.
func Instances(dev *config.DeviceType, tiles int, topo *topology.Graph) []Instance {
	switch dev.Instancing {
	case config.GranularityNode:
		out := make([]Instance, 0, tiles*len(topo.Nodes))
		for t := 0; t < tiles; t++ {
			for _, n := range topo.Nodes {
				out = append(out, nodeInstance(dev.ID, t, n))
			}
		}
		return out
	case config.GranularityTile:
		out := make([]Instance, 0, tiles)
		for t := 0; t < tiles; t++ {
			out = append(out, tileInstance(dev.ID, t))
		}
		return out
	default: // unique, supervisor
		return []Instance{soleInstance(dev.ID)}
	}
}

func nodeInstance(device string, tile int, node string) Instance {
	return Instance{Device: device, Tile: tile, Node: node}
}

func tileInstance(device string, tile int) Instance {
	return Instance{Device: device, Tile: tile}
}

func soleInstance(device string) Instance {
	return Instance{Device: device, Tile: -1}
}
