package dfs_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/dfs"
)

// ExampleDFS demonstrates a depth-first traversal (post-order) on a diamond-shaped graph.
// Graph structure:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
//
// Starting at "A", expected post-order: E F D B C A
func ExampleDFS() {
	// Build a new directed graph
	g := core.NewGraph(core.WithDirected(true))

	// Add directed edges to form the diamond shape:
	// A -> B, A -> C, B -> D, C -> D, D -> E, D -> F
	for _, edge := range []struct{ U, V string }{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "E"}, {"D", "F"},
	} {
		// We ignore errors here for brevity; AddEdge creates the vertices if needed.
		_, _ = g.AddEdge(edge.U, edge.V)
	}

	// Perform DFS starting from vertex "A"
	res, err := dfs.DFS(g, "A")
	if err != nil {
		// If an error occurred (e.g., missing start vertex), print and exit
		fmt.Println("error:", err)
		return
	}

	// res.Order is the post-order traversal of the DFS.
	// We join the slice of vertex IDs with spaces for printing.
	fmt.Println(strings.Join(res.Order, " "))

	// Output (exact post-order for this structure):
	// E F D B C A
}

// ExamplePathExists shows reachability on a directed follower graph.
func ExamplePathExists() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("ann", "ben")
	_, _ = g.AddEdge("ben", "cat")
	_, _ = g.AddEdge("dan", "ann")

	for _, target := range []string{"cat", "dan"} {
		ok, err := dfs.PathExists(g, "ann", target)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("ann -> %s: %v\n", target, ok)
	}

	// Output:
	// ann -> cat: true
	// ann -> dan: false
}

// ExampleComponents lists the friend circles of a small network.
func ExampleComponents() {
	g := core.NewGraph()
	_, _ = g.AddEdge("ann", "ben")
	_, _ = g.AddEdge("ben", "cat")
	_, _ = g.AddEdge("dan", "eve")
	_ = g.AddVertex("fay")

	circles, err := dfs.Components(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range circles {
		fmt.Println(c)
	}
	// Output:
	// [ann ben cat]
	// [dan eve]
	// [fay]
}
