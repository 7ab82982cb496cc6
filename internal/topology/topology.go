// Package topology defines the abstract interconnect graph that
// node-granularity devices are wired according to, along with builders for
// common shapes, GraphML import, node filtering and path-length analysis.
package topology

// Edge is one directed adjacency in the abstract graph. Direction is
// significant: expansion never symmetrizes it.
type Edge struct {
	Source string
	Target string
}

// Graph is the abstract interconnect supplied to an expansion run. Nodes
// and Edges keep their declared order; the graph is immutable for the
// duration of a run.
type Graph struct {
	Nodes []string
	Edges []Edge
}

// HasNode reports whether the graph declares the given node id.
func (g *Graph) HasNode(id string) bool {
	for _, n := range g.Nodes {
		if n == id {
			return true
		}
	}
	return false
}

// OutDegree returns the number of edges leaving each node.
func (g *Graph) OutDegree() map[string]int {
	degrees := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		degrees[n] = 0
	}
	for _, e := range g.Edges {
		degrees[e.Source]++
	}
	return degrees
}

// successors returns the adjacency map of the graph.
func (g *Graph) successors() map[string][]string {
	adj := make(map[string][]string, len(g.Nodes))
	for _, e := range g.Edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
	}
	return adj
}
