package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/mv/gridweaver/internal/config"
	"github.com/mv/gridweaver/internal/ctxlog"
	"github.com/mv/gridweaver/internal/fsutil"
	"github.com/mv/gridweaver/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL schema loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the HCL schema loading process. It is agnostic to the
// origin of the paths and merges blocks from every discovered file, in file
// order, into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL schema files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.Root
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, dev := range root.Devices {
			translated, err := translateDevice(dev)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Devices = append(model.Devices, translated)
		}
		for _, msg := range root.Messages {
			model.Messages = append(model.Messages, translateMessage(msg))
		}
	}

	logger.Debug("HCL loading complete.", "devices", len(model.Devices), "messages", len(model.Messages))
	return model, nil
}
