package config

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// DefaultFieldType is the scalar type assumed for fields that do not
// declare one explicitly.
const DefaultFieldType = "uint32_t"

// Granularity is the replication policy for a device type: once per
// (tile, node), once per tile, or exactly once globally.
type Granularity int

const (
	// GranularityNode replicates a device once per (tile, node) pair.
	GranularityNode Granularity = iota
	// GranularityTile replicates a device once per tile.
	GranularityTile
	// GranularityUnique creates exactly one device instance.
	GranularityUnique
	// GranularitySupervisor creates exactly one supervising instance.
	GranularitySupervisor
)

// String returns the lowercase schema-file spelling of the granularity.
func (g Granularity) String() string {
	switch g {
	case GranularityNode:
		return "node"
	case GranularityTile:
		return "tile"
	case GranularityUnique:
		return "unique"
	case GranularitySupervisor:
		return "supervisor"
	}
	return fmt.Sprintf("granularity(%d)", int(g))
}

// ParseGranularity converts a schema-file spelling into a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "node":
		return GranularityNode, nil
	case "tile":
		return GranularityTile, nil
	case "unique":
		return GranularityUnique, nil
	case "supervisor":
		return GranularitySupervisor, nil
	}
	return 0, fmt.Errorf("unknown instancing granularity %q (want node, tile, unique or supervisor)", s)
}

// Field is the format-agnostic representation of a single property, state
// or message payload field.
type Field struct {
	Name string
	// Type is the scalar target type name. Loaders fill in
	// DefaultFieldType when the schema omits it.
	Type string
	// Length is 1 for scalars and >1 for fixed-size arrays.
	Length int
	// Default is the optional default literal. Scalars only.
	Default *cty.Value
}

// DeviceType is the format-agnostic representation of a `device` block.
type DeviceType struct {
	ID         string
	Instancing Granularity
	Properties []Field
	State      []Field
}

// MessageType is the format-agnostic representation of a `message` block.
// Sources and Destinations reference device-type IDs and keep their
// declaration order.
type MessageType struct {
	ID           string
	Fields       []Field
	Sources      []string
	Destinations []string
}

// Model is the unified, format-agnostic representation of an entire schema
// document: every declared device type and message type, in declaration
// order.
type Model struct {
	Devices  []*DeviceType
	Messages []*MessageType
}
