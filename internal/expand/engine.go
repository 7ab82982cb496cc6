package expand

import (
	"context"
	"sync"

	"github.com/mv/gridweaver/internal/config"
	"github.com/mv/gridweaver/internal/ctxlog"
	"github.com/mv/gridweaver/internal/registry"
	"github.com/mv/gridweaver/internal/topology"
)

// Options tunes an expansion run. The zero value is valid.
type Options struct {
	// Workers sets how many goroutines expand device-type pairs
	// concurrently. Values below 2 keep expansion single-threaded. Each
	// pair's contribution is independent; results are concatenated in
	// canonical pair order at merge time, so the worker count never
	// affects output.
	Workers int
}

// pair is one (message, source device, destination device) expansion unit.
type pair struct {
	message *config.MessageType
	src     *config.DeviceType
	dst     *config.DeviceType
}

// pairResult carries the edges and diagnostics one pair contributed.
type pairResult struct {
	edges []Edge
	diags []Diagnostic
}

// Expand computes the full instance graph for a validated schema. It
// returns the graph together with the diagnostics accumulated for
// unsupported wiring combinations; the caller decides whether those are
// fatal.
func Expand(ctx context.Context, sch *registry.Schema, topo *topology.Graph, tiles int, opts Options) (*Graph, []Diagnostic) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Expansion started.",
		"devices", len(sch.Devices),
		"messages", len(sch.Messages),
		"tiles", tiles,
		"topology_nodes", len(topo.Nodes),
		"topology_edges", len(topo.Edges),
	)

	g := &Graph{Schema: sch, Topology: topo, Tiles: tiles}

	for _, dev := range sch.Devices {
		g.Instances = append(g.Instances, Instances(dev, tiles, topo)...)
	}
	logger.Debug("Instance expansion complete.", "instance_count", len(g.Instances))

	pairs := enumeratePairs(sch)
	results := make([]pairResult, len(pairs))

	if opts.Workers > 1 && len(pairs) > 1 {
		expandParallel(pairs, results, topo, tiles, opts.Workers)
	} else {
		for i, p := range pairs {
			results[i] = expandPair(p, topo, tiles)
		}
	}

	// Merge in canonical pair order regardless of how results were computed.
	var diags []Diagnostic
	for _, res := range results {
		g.Edges = append(g.Edges, res.edges...)
		diags = append(diags, res.diags...)
	}

	logger.Debug("Edge wiring complete.", "edge_count", len(g.Edges), "diagnostics", len(diags))
	return g, diags
}

// enumeratePairs lists every (message, source, destination) combination in
// declaration order: messages outermost, then sources, then destinations.
func enumeratePairs(sch *registry.Schema) []pair {
	var pairs []pair
	for _, m := range sch.Messages {
		for _, srcID := range m.Sources {
			src, _ := sch.Device(srcID)
			for _, dstID := range m.Destinations {
				dst, _ := sch.Device(dstID)
				pairs = append(pairs, pair{message: m, src: src, dst: dst})
			}
		}
	}
	return pairs
}

// expandParallel fans the pair list out to a bounded worker pool. Workers
// write into their own slot of the results slice, so no ordering is lost to
// scheduling.
func expandParallel(pairs []pair, results []pairResult, topo *topology.Graph, tiles, workers int) {
	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = expandPair(pairs[i], topo, tiles)
			}
		}()
	}
	for i := range pairs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
}

// expandPair emits the edge set for a single (message, source, destination)
// combination according to its resolved wiring mode. Iteration is tile-major
// and node-minor throughout, matching instance ordering.
func expandPair(p pair, topo *topology.Graph, tiles int) pairResult {
	mode := Resolve(p.src.Instancing, p.dst.Instancing, p.src.ID == p.dst.ID)

	emit := func(from, to Instance) Edge {
		return Edge{Message: p.message.ID, From: from, To: to}
	}

	var res pairResult
	switch mode {
	case ModeUnsupported:
		res.diags = append(res.diags, Diagnostic{
			Message: p.message.ID,
			Source:  p.src.ID,
			Dest:    p.dst.ID,
			Reason:  unsupportedReason(p.src.Instancing),
		})

	case ModeTopologyFollowing:
		// One edge per declared topology edge, per tile. Direction follows
		// the topology edge exactly; nothing is symmetrized.
		for t := 0; t < tiles; t++ {
			for _, e := range topo.Edges {
				res.edges = append(res.edges, emit(
					nodeInstance(p.src.ID, t, e.Source),
					nodeInstance(p.dst.ID, t, e.Target),
				))
			}
		}

	case ModePerTileBroadcastAll:
		// Full node cross-product within each tile, self-pairs included.
		for t := 0; t < tiles; t++ {
			for _, a := range topo.Nodes {
				for _, b := range topo.Nodes {
					res.edges = append(res.edges, emit(
						nodeInstance(p.src.ID, t, a),
						nodeInstance(p.dst.ID, t, b),
					))
				}
			}
		}

	case ModeFanIn:
		for t := 0; t < tiles; t++ {
			for _, a := range topo.Nodes {
				res.edges = append(res.edges, emit(
					nodeInstance(p.src.ID, t, a),
					tileInstance(p.dst.ID, t),
				))
			}
		}

	case ModeFanInGlobal:
		// Every source instance, whatever its granularity, converges on the
		// single destination instance. Instances already iterates tile-major.
		to := soleInstance(p.dst.ID)
		for _, from := range Instances(p.src, tiles, topo) {
			res.edges = append(res.edges, emit(from, to))
		}

	case ModeFanOut:
		for t := 0; t < tiles; t++ {
			for _, b := range topo.Nodes {
				res.edges = append(res.edges, emit(
					tileInstance(p.src.ID, t),
					nodeInstance(p.dst.ID, t, b),
				))
			}
		}

	case ModeFanOutGlobal:
		from := soleInstance(p.src.ID)
		for _, to := range Instances(p.dst, tiles, topo) {
			res.edges = append(res.edges, emit(from, to))
		}

	case ModePerTile1to1:
		for t := 0; t < tiles; t++ {
			res.edges = append(res.edges, emit(
				tileInstance(p.src.ID, t),
				tileInstance(p.dst.ID, t),
			))
		}

	case ModeSingleton:
		res.edges = append(res.edges, emit(soleInstance(p.src.ID), soleInstance(p.dst.ID)))
	}
	return res
}
