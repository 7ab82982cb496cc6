package expand

import "github.com/mv/gridweaver/internal/config"

// Resolve returns the wiring mode for a (source, destination) granularity
// pair. Same-device-type pairing is decided first: only node-node has
// defined topology semantics, every other self-pairing resolves to
// ModeUnsupported so the caller can record it instead of dropping it
// silently. For different device types, granularity alone determines the
// mode regardless of device identity.
func Resolve(src, dst config.Granularity, sameType bool) Mode {
	if sameType {
		if src == config.GranularityNode && dst == config.GranularityNode {
			return ModeTopologyFollowing
		}
		return ModeUnsupported
	}

	switch src {
	case config.GranularityNode:
		switch dst {
		case config.GranularityNode:
			return ModePerTileBroadcastAll
		case config.GranularityTile:
			return ModeFanIn
		default: // unique, supervisor
			return ModeFanInGlobal
		}
	case config.GranularityTile:
		switch dst {
		case config.GranularityNode:
			return ModeFanOut
		case config.GranularityTile:
			return ModePerTile1to1
		default:
			return ModeFanInGlobal
		}
	default: // unique, supervisor
		switch dst {
		case config.GranularityNode, config.GranularityTile:
			return ModeFanOutGlobal
		default:
			return ModeSingleton
		}
	}
}

// unsupportedReason names why a self-pairing has no wiring. Tile-tile
// self-topology is genuinely undefined; a singleton pairing with itself is
// trivial and recorded rather than wired.
func unsupportedReason(src config.Granularity) string {
	if src == config.GranularityTile {
		return "tile-to-tile self-topology is not defined"
	}
	return "self-pairing of a singleton device is trivial and not wired"
}
