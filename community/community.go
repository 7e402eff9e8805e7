// SPDX-License-Identifier: MIT
package community

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/socnet/bfs"
	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/clique"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/dijkstra"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("community: graph is nil")

	// ErrInsufficientCliques is returned when fewer than two maximal cliques exist.
	ErrInsufficientCliques = errors.New("community: fewer than two cliques")
)

// Bridge describes the link between the two largest communities.
type Bridge struct {
	Largest       []string `json:"largest" yaml:"largest"`
	SecondLargest []string `json:"second_largest" yaml:"second_largest"`

	// Bottlenecks of Largest and SecondLargest respectively.
	From centrality.Score `json:"from" yaml:"from"`
	To   centrality.Score `json:"to" yaml:"to"`

	Connected bool `json:"connected" yaml:"connected"`
	// Distance is the hop count From→To, dijkstra.Unreachable (-1) when none applies.
	Distance int `json:"distance" yaml:"distance"`
}

// Connect builds the Bridge between the two largest cliques of g.
//
// With fewer than two cliques it returns a Bridge whose Distance is -1 along
// with ErrInsufficientCliques, so callers that only want the number can use
// it without checking the error.
func Connect(ctx context.Context, g *core.Graph) (*Bridge, error) {
	if g == nil {
		return &Bridge{Distance: dijkstra.Unreachable}, ErrGraphNil
	}

	cliques, err := clique.MaximalCliques(ctx, g)
	if err != nil {
		return nil, err
	}
	if len(cliques) < 2 {
		return &Bridge{Distance: dijkstra.Unreachable},
			fmt.Errorf("%w: found %d", ErrInsufficientCliques, len(cliques))
	}

	b := &Bridge{
		Largest:       cliques[len(cliques)-1],
		SecondLargest: cliques[len(cliques)-2],
	}
	if b.From, err = Bottleneck(ctx, g, b.Largest); err != nil {
		return nil, err
	}
	if b.To, err = Bottleneck(ctx, g, b.SecondLargest); err != nil {
		return nil, err
	}

	if b.Connected, err = bfs.PathExists(g, b.From.ID, b.To.ID); err != nil {
		return nil, err
	}
	b.Distance = dijkstra.Distance(g, b.From.ID, b.To.ID)

	return b, nil
}

// Bottleneck returns the member of members with the highest betweenness
// inside their induced subgraph; the smallest ID wins ties.
func Bottleneck(ctx context.Context, g *core.Graph, members []string) (centrality.Score, error) {
	if len(members) == 0 {
		return centrality.Score{}, clique.ErrEmptyClique
	}
	cb, err := centrality.Betweenness(ctx, g.Subgraph(members...))
	if err != nil {
		return centrality.Score{}, err
	}
	best, ok := centrality.Max(cb)
	if !ok {
		return centrality.Score{}, fmt.Errorf("community: bottleneck of %v: %w", members, core.ErrVertexNotFound)
	}

	return best, nil
}

// LargestCommunity returns the one-hop ego network of the largest clique.
// ok is false for an empty graph.
func LargestCommunity(ctx context.Context, g *core.Graph) (*core.Graph, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	members, ok, err := clique.Largest(ctx, g)
	if err != nil || !ok {
		return nil, false, err
	}
	ego, err := clique.ExpandByOneHop(g, members)
	if err != nil {
		return nil, false, err
	}

	return ego, true, nil
}
