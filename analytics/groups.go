// SPDX-License-Identifier: MIT
package analytics

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/socnet/clique"
	"github.com/katalvlaran/socnet/community"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/dijkstra"
)

// FindAllMaximalCliques lists maximal cliques by size ascending.
func (e *Engine) FindAllMaximalCliques(ctx context.Context) ([][]string, error) {
	ctx, o := e.begin(ctx, "FindAllMaximalCliques")
	cs, err := clique.MaximalCliques(ctx, e.g)
	largest := 0
	if len(cs) > 0 {
		largest = len(cs[len(cs)-1])
	}
	o.end(err, attribute.Int("cliques", len(cs)), attribute.Int("largest", largest))

	return cs, err
}

// LargestClique returns the largest maximal clique; ok is false on an empty graph.
func (e *Engine) LargestClique(ctx context.Context) ([]string, bool, error) {
	ctx, o := e.begin(ctx, "LargestClique")
	members, ok, err := clique.Largest(ctx, e.g)
	o.end(err, attribute.Bool("found", ok), attribute.Int("size", len(members)))

	return members, ok, err
}

// ExpandByOneHop returns the ego network of members as a new graph.
func (e *Engine) ExpandByOneHop(ctx context.Context, members []string) (*core.Graph, error) {
	_, o := e.begin(ctx, "ExpandByOneHop", attribute.Int("members", len(members)))
	ego, err := clique.ExpandByOneHop(e.g, members)
	var n int
	if ego != nil {
		n = ego.VertexCount()
	}
	o.end(err, attribute.Int("ego_nodes", n))

	return ego, err
}

// FindLargestCommunity expands the largest clique by one hop.
func (e *Engine) FindLargestCommunity(ctx context.Context) (*core.Graph, bool, error) {
	ctx, o := e.begin(ctx, "FindLargestCommunity")
	ego, ok, err := community.LargestCommunity(ctx, e.g)
	var n int
	if ego != nil {
		n = ego.VertexCount()
	}
	o.end(err, attribute.Bool("found", ok), attribute.Int("ego_nodes", n))

	return ego, ok, err
}

// Bridge describes how the two largest communities connect. With fewer than
// two cliques it returns community.ErrInsufficientCliques.
func (e *Engine) Bridge(ctx context.Context) (*community.Bridge, error) {
	ctx, o := e.begin(ctx, "Bridge")
	b, err := community.Connect(ctx, e.g)
	o.end(err, bridgeAttrs(b)...)

	return b, err
}

// ConnectCommunities returns the hop distance between the bottlenecks of the
// two largest cliques. Too few cliques or no path both yield -1 without error.
func (e *Engine) ConnectCommunities(ctx context.Context) (int, error) {
	ctx, o := e.begin(ctx, "ConnectCommunities")
	b, err := community.Connect(ctx, e.g)
	if errors.Is(err, community.ErrInsufficientCliques) {
		o.span.AddEvent("insufficient_cliques")
		o.end(nil, attribute.Int("distance", dijkstra.Unreachable))

		return dijkstra.Unreachable, nil
	}
	o.end(err, bridgeAttrs(b)...)
	if err != nil {
		return dijkstra.Unreachable, err
	}

	return b.Distance, nil
}

func bridgeAttrs(b *community.Bridge) []attribute.KeyValue {
	if b == nil {
		return nil
	}

	return []attribute.KeyValue{
		attribute.String("from", b.From.ID),
		attribute.String("to", b.To.ID),
		attribute.Bool("connected", b.Connected),
		attribute.Int("distance", b.Distance),
	}
}
