// Package toml provides a TOML implementation of the schema loading
// interface defined in the `config` package, for callers that keep their
// schemas in TOML rather than HCL. Both loaders produce the same model.
package toml

import (
	"context"
	"fmt"
	"os"

	"github.com/mv/gridweaver/internal/config"
	"github.com/mv/gridweaver/internal/ctxlog"
	"github.com/mv/gridweaver/internal/fsutil"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// field is the TOML shape of a property, state or payload field.
type field struct {
	Name    string `toml:"name"`
	Type    string `toml:"type,omitempty"`
	Length  *int   `toml:"length,omitempty"`
	Default any    `toml:"default,omitempty"`
}

// deviceType is the TOML shape of a device declaration.
type deviceType struct {
	ID         string  `toml:"id"`
	Instancing string  `toml:"instancing"`
	Properties []field `toml:"property,omitempty"`
	State      []field `toml:"state,omitempty"`
}

// messageType is the TOML shape of a message declaration.
type messageType struct {
	ID           string   `toml:"id"`
	Sources      []string `toml:"sources"`
	Destinations []string `toml:"destinations"`
	Fields       []field  `toml:"field,omitempty"`
}

// root is the top-level TOML document shape.
type root struct {
	Devices  []deviceType  `toml:"device"`
	Messages []messageType `toml:"message"`
}

// Loader is the TOML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new TOML schema loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .toml file under the given paths and merges their
// declarations, in file order, into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("TOML loader started.", "path_count", len(paths))

	files, err := fsutil.FindByExtension(paths, ".toml")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered TOML schema files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", file, err)
		}
		var doc root
		if err := gotoml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode TOML file %s: %w", file, err)
		}

		for _, dev := range doc.Devices {
			translated, err := translateDevice(dev)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Devices = append(model.Devices, translated)
		}
		for _, msg := range doc.Messages {
			translated, err := translateMessage(msg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Messages = append(model.Messages, translated)
		}
	}

	logger.Debug("TOML loading complete.", "devices", len(model.Devices), "messages", len(model.Messages))
	return model, nil
}

func translateDevice(d deviceType) (*config.DeviceType, error) {
	granularity, err := config.ParseGranularity(d.Instancing)
	if err != nil {
		return nil, fmt.Errorf("device %q: %w", d.ID, err)
	}
	properties, err := translateFields(d.Properties)
	if err != nil {
		return nil, fmt.Errorf("device %q: %w", d.ID, err)
	}
	state, err := translateFields(d.State)
	if err != nil {
		return nil, fmt.Errorf("device %q: %w", d.ID, err)
	}
	return &config.DeviceType{
		ID:         d.ID,
		Instancing: granularity,
		Properties: properties,
		State:      state,
	}, nil
}

func translateMessage(m messageType) (*config.MessageType, error) {
	fields, err := translateFields(m.Fields)
	if err != nil {
		return nil, fmt.Errorf("message %q: %w", m.ID, err)
	}
	return &config.MessageType{
		ID:           m.ID,
		Fields:       fields,
		Sources:      m.Sources,
		Destinations: m.Destinations,
	}, nil
}

// translateFields applies the same normalization as the HCL loader. TOML
// defaults arrive as native Go values and are converted through cty so both
// loaders hand identical models to the registry.
func translateFields(fields []field) ([]config.Field, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]config.Field, 0, len(fields))
	for _, f := range fields {
		translated := config.Field{
			Name:   f.Name,
			Type:   f.Type,
			Length: 1,
		}
		if translated.Type == "" {
			translated.Type = config.DefaultFieldType
		}
		if f.Length != nil {
			translated.Length = *f.Length
		}
		if f.Default != nil {
			val, err := defaultValue(f.Default)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			translated.Default = &val
		}
		out = append(out, translated)
	}
	return out, nil
}

// defaultValue converts a decoded TOML literal into a cty.Value.
func defaultValue(v any) (cty.Value, error) {
	impliedType, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unsupported default literal %v: %w", v, err)
	}
	val, err := gocty.ToCtyValue(v, impliedType)
	if err != nil {
		return cty.NilVal, fmt.Errorf("could not convert default literal %v: %w", v, err)
	}
	return val, nil
}
