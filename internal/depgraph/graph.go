package depgraph

import "sort"

// Graph maps each module name to the set of other module names it
// appears to reference. Every discovered module has an entry, possibly
// empty. A Graph belongs to a single validation run and is never shared
// or mutated concurrently.
type Graph map[string]map[string]bool

// Nodes returns the module names in sorted order.
func (g Graph) Nodes() []string {
	nodes := make([]string, 0, len(g))
	for name := range g {
		nodes = append(nodes, name)
	}
	sort.Strings(nodes)
	return nodes
}

// Neighbors returns the sorted dependency set of one module.
func (g Graph) Neighbors(name string) []string {
	deps := make([]string, 0, len(g[name]))
	for dep := range g[name] {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps
}

// AddEdge records that from references to. Self-edges are dropped: a
// module referencing itself is meaningless for cycle detection.
func (g Graph) AddEdge(from, to string) {
	if from == to {
		return
	}
	if g[from] == nil {
		g[from] = make(map[string]bool)
	}
	g[from][to] = true
}

// EdgeCount returns the total number of edges.
func (g Graph) EdgeCount() int {
	n := 0
	for _, deps := range g {
		n += len(deps)
	}
	return n
}
