package app

import (
	"io"
	"log/slog"
)

// newLogger builds the run logger. The level arrives already parsed and
// validated by NewConfig, so the only decision left here is the handler.
func newLogger(level slog.Level, format string, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
