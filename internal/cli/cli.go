package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mv/gridweaver/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridweaver", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridweaver - expand an abstract hardware-graph schema into its instance graph.

Usage:
  gridweaver [options] [SCHEMA_PATH]

Arguments:
  SCHEMA_PATH
    Path to a schema file or a directory containing schema files.

Options:
`)
		flagSet.PrintDefaults()
	}

	schemaFlag := flagSet.String("schema", "", "Path to the schema file or directory.")
	sFlag := flagSet.String("s", "", "Path to the schema file or directory (shorthand).")
	formatFlag := flagSet.String("schema-format", "hcl", "Schema file format. Options: 'hcl' or 'toml'.")
	topologyFlag := flagSet.String("topology", "ring:4", "Topology spec ('ring:N', 'line:N', 'grid:WxH', 'full:N') or 'graphml:<file>'.")
	tilesFlag := flagSet.Int("tiles", 1, "Number of tile replicas of the topology.")
	enableFlag := flagSet.String("enable", "", "Comma-separated node list. Restricts the topology to these nodes.")
	disableFlag := flagSet.String("disable", "", "Comma-separated node list. Removes these nodes from the topology.")
	fragmentsFlag := flagSet.String("fragments", "", "Directory of behavioral code fragments (<id>.c). Optional.")
	outFlag := flagSet.String("out", "", "Output file for the graph description. Defaults to stdout.")
	analyzeFlag := flagSet.Bool("analyze", false, "Print topology path-length analysis to stderr.")
	impactFlag := flagSet.Int("impact", 0, "Run node-removal impact trials, removing this many random nodes per trial.")
	trialsFlag := flagSet.Int("trials", 10, "Number of impact trials.")
	workersFlag := flagSet.Int("workers", 1, "Number of concurrent workers for edge expansion and impact trials.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *schemaFlag != "" {
		path = *schemaFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Schema path determined.", "path", path)

	if path == "" {
		slog.Debug("No schema path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SchemaPath:   path,
		SchemaFormat: strings.ToLower(*formatFlag),
		Topology:     *topologyFlag,
		Tiles:        *tilesFlag,
		EnableNodes:  splitList(*enableFlag),
		DisableNodes: splitList(*disableFlag),
		FragmentsDir: *fragmentsFlag,
		OutPath:      *outFlag,
		Analyze:      *analyzeFlag,
		ImpactNodes:  *impactFlag,
		ImpactTrials: *trialsFlag,
		Workers:      *workersFlag,
		LogFormat:    logFormat,
		LogLevel:     strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitList turns a comma-separated flag value into its non-empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
