// Package dijkstra_test contains unit tests for the hop-count Dijkstra implementation.
// These tests validate input checks, directed graphs, MaxDistance, early exit
// through Distance/ShortestPath, and agreement with breadth-first depths.
package dijkstra_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/socnet/bfs"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := core.NewGraph()
	_, _, err := dijkstra.Dijkstra(g)
	if err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// If graph is nil and no Source is provided, ErrEmptySource has priority over ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil)
	if err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource when graph is nil and Source is empty, got %v", err)
	}
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph when graph is nil, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrVertexNotFound) || !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeMaxDistance(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	if !errors.Is(err, dijkstra.ErrBadMaxDistance) {
		t.Fatalf("Expected ErrBadMaxDistance, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Functional Tests
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle_WithPath(t *testing.T) {
	// A–B, B–C, A–C: every vertex is one hop from A.
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("A", "C")

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]int{"A": 0, "B": 1, "C": 1}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("dist = %v; want %v", dist, want)
	}
	if prev["B"] != "A" || prev["C"] != "A" {
		t.Errorf("prev = %v; want B,C ← A", prev)
	}
	if _, ok := prev["A"]; ok {
		t.Errorf("source must have no predecessor")
	}
}

func TestDijkstra_NoPathMapWithoutOption(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != nil {
		t.Errorf("prev must be nil without WithReturnPath, got %v", prev)
	}
}

func TestDijkstra_DirectedUnreachable(t *testing.T) {
	// A→B→C and D→A: D is unreachable from A.
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("D", "A")

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]int{"A": 0, "B": 1, "C": 2, "D": dijkstra.Unreachable}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("dist = %v; want %v", dist, want)
	}
}

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist["C"] != 2 {
		t.Errorf("dist[C] = %d; want 2", dist["C"])
	}
	if dist["D"] != dijkstra.Unreachable {
		t.Errorf("dist[D] = %d; want Unreachable beyond the cap", dist["D"])
	}

	dist, _, _ = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(0))
	if dist["A"] != 0 || dist["B"] != dijkstra.Unreachable {
		t.Errorf("MaxDistance(0): dist = %v", dist)
	}
}

func TestDijkstra_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	g.AddEdge("A", "A")
	g.AddEdge("A", "B")
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist["A"] != 0 || dist["B"] != 1 {
		t.Errorf("dist = %v", dist)
	}
}

// ------------------------------------------------------------------------
// 3. Distance / ShortestPath
// ------------------------------------------------------------------------

// fivePeople builds 1–2, 1–3, 2–3, 3–4, 4–5.
func fivePeople() *core.Graph {
	g := core.NewGraph()
	for _, e := range [][2]string{{"1", "2"}, {"1", "3"}, {"2", "3"}, {"3", "4"}, {"4", "5"}} {
		g.AddEdge(e[0], e[1])
	}

	return g
}

func TestDistance(t *testing.T) {
	g := fivePeople()
	g.AddVertex("6")

	cases := []struct {
		name       string
		g          core.Reader
		start, end string
		want       int
	}{
		{"three hops", g, "1", "5", 3},
		{"symmetric", g, "5", "1", 3},
		{"self", g, "4", "4", 0},
		{"isolated", g, "1", "6", -1},
		{"absent start", g, "0", "1", -1},
		{"absent end", g, "1", "0", -1},
		{"empty graph", core.NewGraph(), "1", "2", -1},
		{"nil graph", nil, "1", "2", -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dijkstra.Distance(tc.g, tc.start, tc.end); got != tc.want {
				t.Errorf("Distance(%s,%s) = %d; want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestShortestPath(t *testing.T) {
	g := fivePeople()
	path, hops := dijkstra.ShortestPath(g, "1", "5")
	if want := []string{"1", "3", "4", "5"}; !reflect.DeepEqual(path, want) || hops != 3 {
		t.Errorf("ShortestPath = %v,%d; want %v,3", path, hops, want)
	}

	path, hops = dijkstra.ShortestPath(g, "2", "2")
	if !reflect.DeepEqual(path, []string{"2"}) || hops != 0 {
		t.Errorf("ShortestPath(self) = %v,%d", path, hops)
	}

	g.AddVertex("6")
	if path, hops = dijkstra.ShortestPath(g, "1", "6"); path != nil || hops != -1 {
		t.Errorf("ShortestPath(unreachable) = %v,%d", path, hops)
	}
}

// TestDistance_AgreesWithBFS checks the hop distance against BFS depths and reachability.
func TestDistance_AgreesWithBFS(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}, {"d", "e"}, {"f", "e"}, {"a", "e"}} {
		g.AddEdge(e[0], e[1])
	}
	for _, s := range g.Vertices() {
		res, err := bfs.BFS(g, s)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range g.Vertices() {
			d := dijkstra.Distance(g, s, e)
			depth, reached := res.Depth[e]
			ok, err := bfs.PathExists(g, s, e)
			if err != nil {
				t.Fatal(err)
			}
			if reached != ok || reached != (d >= 0) {
				t.Errorf("%s->%s: reachability mismatch (bfs=%v pathExists=%v dist=%d)", s, e, reached, ok, d)
			}
			if reached && depth != d {
				t.Errorf("%s->%s: bfs depth %d, distance %d", s, e, depth, d)
			}
		}
	}
}
