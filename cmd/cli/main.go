package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mv/gridweaver/internal/app"
	"github.com/mv/gridweaver/internal/cli"
	"github.com/mv/gridweaver/internal/config"
	"github.com/mv/gridweaver/internal/hcl"
	"github.com/mv/gridweaver/internal/toml"
)

// main is the entrypoint for the gridweaver application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (unreadable or invalid
	// schema), so we recover here to provide a clean exit message.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(errW, "A critical startup error occurred: %v\n", r)
			os.Exit(1)
		}
	}()

	var loader config.Loader = hcl.NewLoader()
	if appConfig.SchemaFormat == "toml" {
		loader = toml.NewLoader()
	}

	weaver := app.NewApp(outW, errW, appConfig, loader)
	return weaver.Run(context.Background())
}
