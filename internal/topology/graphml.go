package topology

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// GraphML carries no namespace handling beyond the default graphdrawing.org
// schema; node and edge elements are matched by local name.
type graphmlDoc struct {
	XMLName xml.Name       `xml:"graphml"`
	Graphs  []graphmlGraph `xml:"graph"`
}

type graphmlGraph struct {
	Nodes []graphmlNode `xml:"node"`
	Edges []graphmlEdge `xml:"edge"`
}

type graphmlNode struct {
	ID string `xml:"id,attr"`
}

type graphmlEdge struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

// FromGraphML parses a GraphML document into a topology graph. GraphML
// edges are treated as undirected and recorded in both directions, matching
// how network analysis tooling conventionally reads them. Edges referencing
// undeclared nodes are an error.
func FromGraphML(r io.Reader) (*Graph, error) {
	var doc graphmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse GraphML: %w", err)
	}
	if len(doc.Graphs) == 0 {
		return nil, fmt.Errorf("GraphML document contains no graph element")
	}

	src := doc.Graphs[0]
	g := &Graph{Nodes: make([]string, 0, len(src.Nodes))}
	declared := make(map[string]struct{}, len(src.Nodes))
	for _, n := range src.Nodes {
		g.Nodes = append(g.Nodes, n.ID)
		declared[n.ID] = struct{}{}
	}
	for _, e := range src.Edges {
		if _, ok := declared[e.Source]; !ok {
			return nil, fmt.Errorf("GraphML edge references undeclared node %q", e.Source)
		}
		if _, ok := declared[e.Target]; !ok {
			return nil, fmt.Errorf("GraphML edge references undeclared node %q", e.Target)
		}
		g.Edges = append(g.Edges,
			Edge{Source: e.Source, Target: e.Target},
			Edge{Source: e.Target, Target: e.Source},
		)
	}
	return g, nil
}

// LoadGraphML reads and parses a GraphML file from disk.
func LoadGraphML(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening GraphML file: %w", err)
	}
	defer f.Close()
	g, err := FromGraphML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
