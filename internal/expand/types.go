package expand

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mv/gridweaver/internal/registry"
	"github.com/mv/gridweaver/internal/topology"
)

// Mode is the resolved edge-generation strategy for a (source granularity,
// destination granularity, same-type?) combination.
type Mode int

const (
	// ModeUnsupported marks a combination with no defined wiring. It emits
	// no edges and is surfaced as a diagnostic, never an error.
	ModeUnsupported Mode = iota
	// ModeTopologyFollowing wires one edge per topology edge, within each tile.
	ModeTopologyFollowing
	// ModePerTileBroadcastAll wires every node in a tile to every node in
	// the same tile, self-pairs included.
	ModePerTileBroadcastAll
	// ModeFanIn wires every node in a tile to the tile's single instance.
	ModeFanIn
	// ModeFanInGlobal wires every source instance, across all tiles, to the
	// single global instance.
	ModeFanInGlobal
	// ModeFanOut wires a tile's single instance to every node in that tile.
	ModeFanOut
	// ModeFanOutGlobal wires the single global instance to every
	// destination instance across all tiles.
	ModeFanOutGlobal
	// ModePerTile1to1 wires each tile instance to the same-indexed tile
	// instance of the destination type.
	ModePerTile1to1
	// ModeSingleton wires exactly one edge between two global instances.
	ModeSingleton
)

// String returns a stable human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeUnsupported:
		return "unsupported"
	case ModeTopologyFollowing:
		return "topology-following"
	case ModePerTileBroadcastAll:
		return "per-tile-broadcast-all"
	case ModeFanIn:
		return "fan-in"
	case ModeFanInGlobal:
		return "fan-in-global"
	case ModeFanOut:
		return "fan-out"
	case ModeFanOutGlobal:
		return "fan-out-global"
	case ModePerTile1to1:
		return "per-tile-1to1"
	case ModeSingleton:
		return "singleton"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Instance is one concrete device occurrence. Identity is the full tuple:
// Tile is -1 for unique/supervisor devices and Node is empty for anything
// below node granularity.
type Instance struct {
	Device string
	Tile   int
	Node   string
}

// ID returns the canonical composite identifier for the instance:
// "dev.t<tile>.<node>" at node granularity, "dev.t<tile>" at tile
// granularity and "dev" for global instances.
func (i Instance) ID() string {
	var sb strings.Builder
	sb.WriteString(i.Device)
	if i.Tile >= 0 {
		sb.WriteString(".t")
		sb.WriteString(strconv.Itoa(i.Tile))
	}
	if i.Node != "" {
		sb.WriteByte('.')
		sb.WriteString(i.Node)
	}
	return sb.String()
}

// InputPin returns the name of the instance's input pin for a message type.
func InputPin(message string) string { return message + "_in" }

// OutputPin returns the name of the instance's output pin for a message type.
func OutputPin(message string) string { return message + "_out" }

// Edge is one directed edge instance from a source output pin to a
// destination input pin.
type Edge struct {
	Message string
	From    Instance
	To      Instance
}

// FromEndpoint returns the source endpoint in "<instance-id>:<pin>" form.
func (e Edge) FromEndpoint() string { return e.From.ID() + ":" + OutputPin(e.Message) }

// ToEndpoint returns the destination endpoint in "<instance-id>:<pin>" form.
func (e Edge) ToEndpoint() string { return e.To.ID() + ":" + InputPin(e.Message) }

// Diagnostic records an unsupported or degenerate wiring combination
// encountered during expansion. Expansion continues past it; the affected
// pair simply contributes zero edges.
type Diagnostic struct {
	Message string
	Source  string
	Dest    string
	Reason  string
}

// String renders the diagnostic for logs and CLI output.
func (d Diagnostic) String() string {
	return fmt.Sprintf("message %q, %s -> %s: %s", d.Message, d.Source, d.Dest, d.Reason)
}

// Graph is the fully expanded instance graph.
type Graph struct {
	Schema   *registry.Schema
	Topology *topology.Graph
	Tiles    int

	Instances []Instance
	Edges     []Edge
}
