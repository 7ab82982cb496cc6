package config

import "context"

// Loader is the interface for a format-specific schema loader.
type Loader interface {
	// Load reads schema declarations from the given paths and translates
	// them into the format-agnostic model. Paths may be files or
	// directories; directories are searched recursively.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
