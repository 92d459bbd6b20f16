package depgraph

import (
	"reflect"
	"testing"
)

func graphOf(edges map[string][]string) Graph {
	g := make(Graph)
	for from, tos := range edges {
		if g[from] == nil {
			g[from] = make(map[string]bool)
		}
		for _, to := range tos {
			g[from][to] = true
		}
	}
	return g
}

func TestFindCyclesEmptyGraph(t *testing.T) {
	if got := FindCycles(make(Graph)); len(got) != 0 {
		t.Errorf("Expected no cycles in empty graph, got %v", got)
	}
}

func TestFindCyclesSingleNode(t *testing.T) {
	g := graphOf(map[string][]string{"a": {}})
	if got := FindCycles(g); len(got) != 0 {
		t.Errorf("Expected no cycles for single node, got %v", got)
	}
}

func TestFindCyclesLinearChain(t *testing.T) {
	g := graphOf(map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {},
	})
	if got := FindCycles(g); len(got) != 0 {
		t.Errorf("Expected no cycles for a -> b -> c, got %v", got)
	}
}

func TestFindCyclesDiamondIsAcyclic(t *testing.T) {
	g := graphOf(map[string][]string{
		"a": {"b", "c"},
		"b": {"d"},
		"c": {"d"},
		"d": {},
	})
	if got := FindCycles(g); len(got) != 0 {
		t.Errorf("Expected no cycles for diamond, got %v", got)
	}
}

func TestFindCyclesSimpleThreeCycle(t *testing.T) {
	g := graphOf(map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"a"},
	})

	got := FindCycles(g)
	want := []string{"a -> b -> c -> a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindCycles = %v, want %v", got, want)
	}
}

func TestFindCyclesTwoNodeCycle(t *testing.T) {
	g := graphOf(map[string][]string{
		"a": {"b"},
		"b": {"a"},
	})

	got := FindCycles(g)
	want := []string{"a -> b -> a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindCycles = %v, want %v", got, want)
	}
}

func TestFindCyclesTwoDisjointCycles(t *testing.T) {
	g := graphOf(map[string][]string{
		"a": {"b"},
		"b": {"a"},
		"c": {"d"},
		"d": {"c"},
	})

	got := FindCycles(g)
	want := []string{"a -> b -> a", "c -> d -> c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindCycles = %v, want %v", got, want)
	}
}

func TestFindCyclesNotReportedTwiceFromMultipleRoots(t *testing.T) {
	// Both "entry" and "other" lead into the a <-> b cycle; only one
	// report may come out.
	g := graphOf(map[string][]string{
		"a":     {"b"},
		"b":     {"a"},
		"entry": {"a"},
		"other": {"b"},
	})

	got := FindCycles(g)
	if len(got) != 1 {
		t.Fatalf("Expected exactly one report for a single structural cycle, got %v", got)
	}
	if got[0] != "a -> b -> a" {
		t.Errorf("Expected 'a -> b -> a', got %q", got[0])
	}
}

func TestFindCyclesCycleNotContainingRoot(t *testing.T) {
	// Root "a" is outside the cycle; the report starts at the first
	// occurrence of the repeated node, not the root.
	g := graphOf(map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"b"},
	})

	got := FindCycles(g)
	want := []string{"b -> c -> b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindCycles = %v, want %v", got, want)
	}
}

func TestFindCyclesIgnoresSelfLoop(t *testing.T) {
	g := graphOf(map[string][]string{
		"a": {"a", "b"},
		"b": {},
	})

	if got := FindCycles(g); len(got) != 0 {
		t.Errorf("Self-loop must not produce a one-node cycle report, got %v", got)
	}
}

func TestFindCyclesSelfLoopDoesNotMaskRealCycle(t *testing.T) {
	g := graphOf(map[string][]string{
		"a": {"a", "b"},
		"b": {"a"},
	})

	got := FindCycles(g)
	want := []string{"a -> b -> a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindCycles = %v, want %v", got, want)
	}
}

func TestAddEdgeDropsSelfEdges(t *testing.T) {
	g := make(Graph)
	g.AddEdge("a", "a")
	g.AddEdge("a", "b")

	if g["a"]["a"] {
		t.Error("AddEdge must drop self-edges")
	}
	if !g["a"]["b"] {
		t.Error("AddEdge must keep real edges")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("Expected 1 edge, got %d", g.EdgeCount())
	}
}
