package topology

// Keep returns a copy of the graph restricted to the given node subset.
// Edges incident to a removed node are dropped. Declaration order of the
// surviving nodes and edges is preserved.
func Keep(g *Graph, nodes []string) *Graph {
	keep := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		keep[n] = struct{}{}
	}
	out := &Graph{}
	for _, n := range g.Nodes {
		if _, ok := keep[n]; ok {
			out.Nodes = append(out.Nodes, n)
		}
	}
	for _, e := range g.Edges {
		if _, ok := keep[e.Source]; !ok {
			continue
		}
		if _, ok := keep[e.Target]; !ok {
			continue
		}
		out.Edges = append(out.Edges, e)
	}
	return out
}

// Drop returns a copy of the graph with the given nodes removed, along with
// every edge incident to them.
func Drop(g *Graph, nodes []string) *Graph {
	drop := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		drop[n] = struct{}{}
	}
	var keep []string
	for _, n := range g.Nodes {
		if _, ok := drop[n]; !ok {
			keep = append(keep, n)
		}
	}
	return Keep(g, keep)
}
