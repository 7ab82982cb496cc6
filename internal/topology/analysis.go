package topology

import (
	"fmt"
	"math/rand"
	"sync"
)

// TotalPathLength returns the sum of shortest-path distances over every
// ordered pair of nodes reachable from one another, computed by BFS from
// each node. Unreachable pairs contribute nothing.
func TotalPathLength(g *Graph) int {
	adj := g.successors()
	total := 0
	for _, start := range g.Nodes {
		visited := map[string]struct{}{start: {}}
		frontier := []string{}
		for _, m := range adj[start] {
			if _, ok := visited[m]; !ok {
				visited[m] = struct{}{}
				frontier = append(frontier, m)
			}
		}
		depth := 1
		for len(frontier) > 0 {
			total += depth * len(frontier)
			var next []string
			for _, n := range frontier {
				for _, m := range adj[n] {
					if _, ok := visited[m]; !ok {
						visited[m] = struct{}{}
						next = append(next, m)
					}
				}
			}
			frontier = next
			depth++
		}
	}
	return total
}

// AverageShortestPath returns the mean shortest-path distance over all
// ordered pairs of distinct nodes. It fails if the graph is disconnected or
// has fewer than two nodes, since the mean is undefined there.
func AverageShortestPath(g *Graph) (float64, error) {
	n := len(g.Nodes)
	if n < 2 {
		return 0, fmt.Errorf("average shortest path undefined for %d node(s)", n)
	}
	adj := g.successors()
	for _, start := range g.Nodes {
		reached := 1
		visited := map[string]struct{}{start: {}}
		frontier := []string{start}
		for len(frontier) > 0 {
			var next []string
			for _, node := range frontier {
				for _, m := range adj[node] {
					if _, ok := visited[m]; !ok {
						visited[m] = struct{}{}
						next = append(next, m)
						reached++
					}
				}
			}
			frontier = next
		}
		if reached != n {
			return 0, fmt.Errorf("graph is disconnected: %d of %d nodes reachable from %q", reached, n, start)
		}
	}
	return float64(TotalPathLength(g)) / float64(n*(n-1)), nil
}

// DegreeDistribution returns a histogram of node out-degrees: degree →
// number of nodes with that out-degree.
func DegreeDistribution(g *Graph) map[int]int {
	dist := make(map[int]int)
	for _, degree := range g.OutDegree() {
		dist[degree]++
	}
	return dist
}

// Impact runs repeated node-removal trials against the graph. Each trial
// removes m distinct random nodes and measures the mean path length of the
// reduced graph over its ordered node pairs, with unreachable pairs
// contributing zero distance. The returned slice holds one figure per
// trial, indexed by trial. Trials are independent, so they fan out to the
// given number of workers; each worker writes into its own slots, keeping
// the result order fixed.
func Impact(g *Graph, m, trials, workers int) ([]float64, error) {
	n := len(g.Nodes)
	if m < 0 {
		return nil, fmt.Errorf("impact node count must not be negative, got %d", m)
	}
	if n-m < 2 {
		return nil, fmt.Errorf("impact undefined: removing %d of %d node(s) leaves fewer than two", m, n)
	}
	if trials < 1 {
		return nil, fmt.Errorf("impact needs at least one trial, got %d", trials)
	}
	if workers < 1 {
		workers = 1
	}

	trial := func() float64 {
		perm := rand.Perm(n)
		removed := make([]string, m)
		for i := 0; i < m; i++ {
			removed[i] = g.Nodes[perm[i]]
		}
		reduced := Drop(g, removed)
		k := n - m
		return float64(TotalPathLength(reduced)) / float64(k*(k-1))
	}

	figures := make([]float64, trials)
	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				figures[i] = trial()
			}
		}()
	}
	for i := 0; i < trials; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
	return figures, nil
}
