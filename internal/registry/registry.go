package registry

import (
	"context"
	"fmt"

	"github.com/mv/gridweaver/internal/config"
	"github.com/mv/gridweaver/internal/ctxlog"
)

// SchemaError reports a fatal defect in the declared schema: a duplicate
// type id, a dangling device-type reference, or an invalid field length.
// No output is produced once one is raised.
type SchemaError struct {
	// ID is the offending type or field identifier.
	ID     string
	Reason string
}

// Error implements the error interface for SchemaError.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error at %q: %s", e.ID, e.Reason)
}

// Schema is the canonical, validated form of a loaded model. Device and
// message types keep their declaration order; lookups go through the index.
type Schema struct {
	Devices  []*config.DeviceType
	Messages []*config.MessageType

	devices map[string]*config.DeviceType
}

// Device returns the device type declared with the given id.
func (s *Schema) Device(id string) (*config.DeviceType, bool) {
	dev, ok := s.devices[id]
	return dev, ok
}

// Build validates a loaded model and returns its canonical schema. It fails
// with a *SchemaError when a device-type id is declared twice, a message
// references an undeclared device type, or a field length is non-positive.
// No other validation is performed here; target-type validity is the
// caller's concern.
func Build(ctx context.Context, model *config.Model) (*Schema, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry build started.", "devices", len(model.Devices), "messages", len(model.Messages))

	s := &Schema{
		Devices:  model.Devices,
		Messages: model.Messages,
		devices:  make(map[string]*config.DeviceType, len(model.Devices)),
	}

	for _, dev := range model.Devices {
		if _, exists := s.devices[dev.ID]; exists {
			return nil, &SchemaError{ID: dev.ID, Reason: "device type declared twice"}
		}
		s.devices[dev.ID] = dev
		if err := validateFields(dev.ID, dev.Properties); err != nil {
			return nil, err
		}
		if err := validateFields(dev.ID, dev.State); err != nil {
			return nil, err
		}
	}

	seenMessages := make(map[string]struct{}, len(model.Messages))
	for _, msg := range model.Messages {
		if _, exists := seenMessages[msg.ID]; exists {
			return nil, &SchemaError{ID: msg.ID, Reason: "message type declared twice"}
		}
		seenMessages[msg.ID] = struct{}{}
		if err := validateFields(msg.ID, msg.Fields); err != nil {
			return nil, err
		}
		for _, ref := range msg.Sources {
			if _, ok := s.devices[ref]; !ok {
				return nil, &SchemaError{ID: msg.ID, Reason: fmt.Sprintf("sources references undeclared device type %q", ref)}
			}
		}
		for _, ref := range msg.Destinations {
			if _, ok := s.devices[ref]; !ok {
				return nil, &SchemaError{ID: msg.ID, Reason: fmt.Sprintf("destinations references undeclared device type %q", ref)}
			}
		}
	}

	logger.Debug("Registry build complete.")
	return s, nil
}

func validateFields(owner string, fields []config.Field) error {
	for _, f := range fields {
		if f.Length < 1 {
			return &SchemaError{
				ID:     owner + "." + f.Name,
				Reason: fmt.Sprintf("field length must be positive, got %d", f.Length),
			}
		}
	}
	return nil
}
