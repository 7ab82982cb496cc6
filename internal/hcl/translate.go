package hcl

import (
	"fmt"

	"github.com/mv/gridweaver/internal/config"
	"github.com/mv/gridweaver/internal/schema"
)

// translateDevice converts an HCL-specific device block into the agnostic model.
func translateDevice(d *schema.DeviceType) (*config.DeviceType, error) {
	granularity, err := config.ParseGranularity(d.Instancing)
	if err != nil {
		return nil, fmt.Errorf("device %q: %w", d.ID, err)
	}
	return &config.DeviceType{
		ID:         d.ID,
		Instancing: granularity,
		Properties: translateFields(d.Properties),
		State:      translateFields(d.State),
	}, nil
}

// translateMessage converts an HCL-specific message block into the agnostic model.
func translateMessage(m *schema.MessageType) *config.MessageType {
	return &config.MessageType{
		ID:           m.ID,
		Fields:       translateFields(m.Fields),
		Sources:      m.Sources,
		Destinations: m.Destinations,
	}
}

// translateFields normalizes field blocks: an omitted type becomes the
// default scalar type, and an omitted length means scalar (length 1).
// Explicit lengths pass through unchanged so the registry can reject
// non-positive values.
func translateFields(fields []*schema.Field) []config.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]config.Field, 0, len(fields))
	for _, f := range fields {
		field := config.Field{
			Name:    f.Name,
			Type:    f.Type,
			Length:  1,
			Default: f.Default,
		}
		if field.Type == "" {
			field.Type = config.DefaultFieldType
		}
		if f.Length != nil {
			field.Length = *f.Length
		}
		if f.Default != nil && f.Default.IsNull() {
			// A default that evaluates to null is treated as absent.
			field.Default = nil
		}
		out = append(out, field)
	}
	return out
}
