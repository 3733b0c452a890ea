package registry

import "fmt"

// graph is a dependency graph over benchmark names, used to reject cycles.
type graph struct {
	nodes    map[string]bool
	edges    map[string][]string // node -> list of nodes it depends on
	inDegree map[string]int      // node -> number of incoming edges
}

func newGraph() *graph {
	return &graph{
		nodes:    make(map[string]bool),
		edges:    make(map[string][]string),
		inDegree: make(map[string]int),
	}
}

func (g *graph) addNode(id string) {
	if !g.nodes[id] {
		g.nodes[id] = true
		g.inDegree[id] = 0
	}
}

// addEdge records that 'from' depends on 'to'.
func (g *graph) addEdge(from, to string) {
	g.addNode(from)
	g.addNode(to)

	g.edges[from] = append(g.edges[from], to)
	g.inDegree[from]++
}

// topologicalSort returns the nodes in dependency order, dependencies first.
// Returns an error if a cycle is detected.
func (g *graph) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(g.inDegree))
	for node, degree := range g.inDegree {
		inDegree[node] = degree
	}

	var queue []string
	for node, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, node)
		}
	}

	var result []string
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		result = append(result, current)

		for node, deps := range g.edges {
			for _, dep := range deps {
				if dep == current {
					inDegree[node]--
					if inDegree[node] == 0 {
						queue = append(queue, node)
					}
				}
			}
		}
	}

	if len(result) != len(g.nodes) {
		return nil, fmt.Errorf("circular dependency detected between benchmarks")
	}

	return result, nil
}
