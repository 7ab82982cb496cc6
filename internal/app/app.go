package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mv/gridweaver/internal/config"
	"github.com/mv/gridweaver/internal/ctxlog"
	"github.com/mv/gridweaver/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	schema *registry.Schema
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with the schema loaded and validated. Loading or
// validation failures are fatal startup errors and panic; the entrypoint
// recovers them into a clean exit.
func NewApp(outW, errW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.Level, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.SchemaPath)
	if err != nil {
		panic(fmt.Errorf("failed to load schema: %w", err))
	}
	logger.Debug("Schema loaded into unified model.",
		"devices", len(model.Devices), "messages", len(model.Messages))

	schema, err := registry.Build(ctx, model)
	if err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
		schema: schema,
	}
}

// Schema returns the validated schema. This is primarily for testing.
func (a *App) Schema() *registry.Schema {
	return a.schema
}
