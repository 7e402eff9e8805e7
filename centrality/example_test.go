package centrality_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socnet/builder"
	"github.com/katalvlaran/socnet/centrality"
)

// ExampleImportant finds the hub of a star-shaped friendship network.
func ExampleImportant() {
	g, _ := builder.BuildGraph(nil, nil, builder.Star(4))
	top, _ := centrality.Important(g)
	for _, s := range top {
		fmt.Printf("%s %.2f\n", s.ID, s.Value)
	}
	// Output:
	// Center 1.00
}

// ExampleBetweenness ranks members of a path by how many routes they carry.
func ExampleBetweenness() {
	g, _ := builder.BuildGraph(nil, nil, builder.Path(4))
	cb, _ := centrality.Betweenness(context.Background(), g)
	for _, s := range centrality.Ranked(cb) {
		fmt.Printf("%s %.3f\n", s.ID, s.Value)
	}
	// Output:
	// 1 0.667
	// 2 0.667
	// 0 0.000
	// 3 0.000
}
