package topology

import (
	"fmt"
	"strconv"
	"strings"
)

// Ring returns a directed cycle of n nodes: 0→1→…→(n-1)→0.
func Ring(n int) *Graph {
	g := &Graph{Nodes: nodeNames(n)}
	for i := 0; i < n; i++ {
		g.Edges = append(g.Edges, Edge{Source: g.Nodes[i], Target: g.Nodes[(i+1)%n]})
	}
	if n == 1 {
		// A one-node ring would self-loop; leave it edgeless instead.
		g.Edges = nil
	}
	return g
}

// Line returns a bidirectional chain of n nodes: i↔i+1.
func Line(n int) *Graph {
	g := &Graph{Nodes: nodeNames(n)}
	for i := 0; i+1 < n; i++ {
		g.Edges = append(g.Edges,
			Edge{Source: g.Nodes[i], Target: g.Nodes[i+1]},
			Edge{Source: g.Nodes[i+1], Target: g.Nodes[i]},
		)
	}
	return g
}

// Grid2D returns a width×height 4-neighbour mesh with bidirectional edges.
// Node ids are "x<col>y<row>", row-major.
func Grid2D(width, height int) *Graph {
	g := &Graph{}
	name := func(x, y int) string { return fmt.Sprintf("x%dy%d", x, y) }
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Nodes = append(g.Nodes, name(x, y))
		}
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x+1 < width {
				g.Edges = append(g.Edges,
					Edge{Source: name(x, y), Target: name(x+1, y)},
					Edge{Source: name(x+1, y), Target: name(x, y)},
				)
			}
			if y+1 < height {
				g.Edges = append(g.Edges,
					Edge{Source: name(x, y), Target: name(x, y+1)},
					Edge{Source: name(x, y+1), Target: name(x, y)},
				)
			}
		}
	}
	return g
}

// Full returns a fully-connected graph of n nodes: every ordered pair
// (a, b) with a ≠ b.
func Full(n int) *Graph {
	g := &Graph{Nodes: nodeNames(n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				g.Edges = append(g.Edges, Edge{Source: g.Nodes[i], Target: g.Nodes[j]})
			}
		}
	}
	return g
}

// Parse builds a topology from a compact spec string: "ring:8", "line:4",
// "grid:3x3" or "full:5".
func Parse(spec string) (*Graph, error) {
	kind, arg, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("invalid topology spec %q (want kind:size, e.g. ring:8)", spec)
	}
	switch kind {
	case "ring", "line", "full":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid topology size %q in spec %q", arg, spec)
		}
		switch kind {
		case "ring":
			return Ring(n), nil
		case "line":
			return Line(n), nil
		default:
			return Full(n), nil
		}
	case "grid":
		w, h, ok := strings.Cut(arg, "x")
		if !ok {
			return nil, fmt.Errorf("invalid grid spec %q (want grid:WxH)", spec)
		}
		width, errW := strconv.Atoi(w)
		height, errH := strconv.Atoi(h)
		if errW != nil || errH != nil || width < 0 || height < 0 {
			return nil, fmt.Errorf("invalid grid dimensions in spec %q", spec)
		}
		return Grid2D(width, height), nil
	}
	return nil, fmt.Errorf("unknown topology kind %q in spec %q", kind, spec)
}

func nodeNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = "n" + strconv.Itoa(i)
	}
	return names
}
