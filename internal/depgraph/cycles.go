package depgraph

import (
	"strings"
)

// frame is one level of the iterative depth-first traversal: a node and
// the index of the next neighbor to try. An explicit stack keeps the
// traversal depth bounded regardless of graph size.
type frame struct {
	node string
	next int
}

// FindCycles runs depth-first cycle detection over the graph and
// returns one " -> "-joined report per traversal root that reaches a
// cycle, e.g. "auth -> billing -> auth". An empty result means the
// graph is acyclic.
//
// Nodes and neighbors are visited in sorted order, so output is stable.
// Fully explored nodes are never re-entered as roots, which guarantees
// each structural cycle is reported exactly once even when several
// roots lead into it, and bounds the whole traversal at O(V + E).
func FindCycles(g Graph) []string {
	visited := make(map[string]bool, len(g))
	onPath := make(map[string]bool, len(g))

	neighbors := make(map[string][]string, len(g))
	for _, node := range g.Nodes() {
		neighbors[node] = g.Neighbors(node)
	}

	var reports []string
	for _, root := range g.Nodes() {
		if visited[root] {
			continue
		}
		if cycle := search(root, neighbors, visited, onPath); cycle != "" {
			reports = append(reports, cycle)
		}
	}

	return reports
}

// search explores one root and returns the first cycle found, or "".
// Mirrors recursive DFS with visited / recursion-stack sets; the cycle
// report is the active path from the first occurrence of the repeated
// node, closed by repeating that node. For graphs where a node sits on
// several active-path positions this yields one valid cycle per root,
// not an enumeration of all cycles.
func search(root string, neighbors map[string][]string, visited, onPath map[string]bool) string {
	stack := []frame{{node: root}}
	path := []string{root}
	visited[root] = true
	onPath[root] = true

	defer func() {
		// A found cycle abandons the traversal mid-path; clear the
		// active-path marks so later roots start clean.
		for _, node := range path {
			onPath[node] = false
		}
	}()

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		adj := neighbors[top.node]

		if top.next >= len(adj) {
			onPath[top.node] = false
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
			continue
		}

		next := adj[top.next]
		top.next++

		// A self-edge is never a reportable cycle
		if next == top.node {
			continue
		}

		if onPath[next] {
			start := 0
			for i, node := range path {
				if node == next {
					start = i
					break
				}
			}
			cycle := append(append([]string{}, path[start:]...), next)
			return strings.Join(cycle, " -> ")
		}

		if !visited[next] {
			visited[next] = true
			onPath[next] = true
			path = append(path, next)
			stack = append(stack, frame{node: next})
		}
	}

	return ""
}
