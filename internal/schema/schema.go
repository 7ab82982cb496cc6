// Package schema declares the HCL block shapes for schema files. These
// structs are decode targets only; the `hcl` package translates them into
// the format-agnostic config model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Field represents a `property`, `state` or `field` block. Length is a
// pointer so an omitted length (scalar) can be told apart from an explicit
// zero, which the registry rejects.
type Field struct {
	Name    string     `hcl:"name,label"`
	Type    string     `hcl:"type,optional"`
	Length  *int       `hcl:"length,optional"`
	Default *cty.Value `hcl:"default,optional"`
}

// DeviceType represents a `device` block from a schema file.
type DeviceType struct {
	ID         string   `hcl:"id,label"`
	Instancing string   `hcl:"instancing"`
	Properties []*Field `hcl:"property,block"`
	State      []*Field `hcl:"state,block"`
}

// MessageType represents a `message` block from a schema file.
type MessageType struct {
	ID           string   `hcl:"id,label"`
	Sources      []string `hcl:"sources"`
	Destinations []string `hcl:"destinations"`
	Fields       []*Field `hcl:"field,block"`
}

// Root represents the top-level structure of a schema file, containing all
// device and message type declarations.
type Root struct {
	Devices  []*DeviceType  `hcl:"device,block"`
	Messages []*MessageType `hcl:"message,block"`
	Remain   hcl.Body       `hcl:",remain"`
}
