package app

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mv/gridweaver/internal/ctxlog"
	"github.com/mv/gridweaver/internal/expand"
	"github.com/mv/gridweaver/internal/fragments"
	"github.com/mv/gridweaver/internal/render"
	"github.com/mv/gridweaver/internal/topology"
)

// Run executes one full expansion: build the topology, expand the schema
// into the instance graph, and render the graph description. Unsupported
// wiring combinations are reported on the error stream but never fail the
// run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	topo, err := a.buildTopology()
	if err != nil {
		return err
	}
	a.logger.Debug("Topology ready.", "nodes", len(topo.Nodes), "edges", len(topo.Edges))

	if a.config.Analyze {
		a.analyze(topo)
	}
	if a.config.ImpactNodes > 0 {
		if err := a.impact(topo); err != nil {
			return err
		}
	}

	graph, diags := expand.Expand(ctx, a.schema, topo, a.config.Tiles, expand.Options{
		Workers: a.config.Workers,
	})
	a.logger.Info("Expansion complete.",
		"instances", len(graph.Instances),
		"edges", len(graph.Edges),
		"diagnostics", len(diags),
	)

	warn := color.New(color.FgYellow)
	for _, d := range diags {
		warn.Fprintf(a.errW, "unsupported wiring: %s\n", d)
	}

	var frags fragments.Lookup = fragments.None
	if a.config.FragmentsDir != "" {
		frags = fragments.NewDir(a.config.FragmentsDir)
	}

	out := a.outW
	if a.config.OutPath != "" {
		f, err := os.Create(a.config.OutPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return render.WriteXML(out, graph, frags)
}

// buildTopology resolves the configured topology spec, either a builder
// shape like "ring:8" or "graphml:<file>" for an imported graph, then
// applies the enable/disable node filters. The filtered graph feeds both
// analysis and expansion.
func (a *App) buildTopology() (*topology.Graph, error) {
	spec := a.config.Topology

	var (
		topo *topology.Graph
		err  error
	)
	if file, ok := strings.CutPrefix(spec, "graphml:"); ok {
		topo, err = topology.LoadGraphML(file)
	} else {
		topo, err = topology.Parse(spec)
	}
	if err != nil {
		return nil, err
	}

	for _, list := range [][]string{a.config.EnableNodes, a.config.DisableNodes} {
		for _, n := range list {
			if !topo.HasNode(n) {
				return nil, fmt.Errorf("topology has no node %q", n)
			}
		}
	}
	if len(a.config.EnableNodes) > 0 {
		topo = topology.Keep(topo, a.config.EnableNodes)
	}
	if len(a.config.DisableNodes) > 0 {
		topo = topology.Drop(topo, a.config.DisableNodes)
	}
	return topo, nil
}

// impact runs the node-removal trials and prints one figure per trial to
// the error stream.
func (a *App) impact(topo *topology.Graph) error {
	figures, err := topology.Impact(topo, a.config.ImpactNodes, a.config.ImpactTrials, a.config.Workers)
	if err != nil {
		return err
	}
	for i, f := range figures {
		fmt.Fprintf(a.errW, "impact trial %d: %.6f\n", i, f)
	}
	return nil
}

// analyze prints path-length metrics for the topology to the error stream.
func (a *App) analyze(topo *topology.Graph) {
	fmt.Fprintf(a.errW, "topology: %d nodes, %d edges\n", len(topo.Nodes), len(topo.Edges))
	fmt.Fprintf(a.errW, "total path length: %d\n", topology.TotalPathLength(topo))
	if asp, err := topology.AverageShortestPath(topo); err == nil {
		fmt.Fprintf(a.errW, "average shortest path: %.4f\n", asp)
	} else {
		fmt.Fprintf(a.errW, "average shortest path: %v\n", err)
	}
	dist := topology.DegreeDistribution(topo)
	degrees := make([]int, 0, len(dist))
	for degree := range dist {
		degrees = append(degrees, degree)
	}
	sort.Ints(degrees)
	for _, degree := range degrees {
		fmt.Fprintf(a.errW, "out-degree %d: %d node(s)\n", degree, dist[degree])
	}
}
