// SPDX-License-Identifier: MIT
package analytics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/socnet/centrality"
)

// DegreeCentrality returns degree(v)/(|V|-1) for every member.
func (e *Engine) DegreeCentrality(ctx context.Context) (map[string]float64, error) {
	_, o := e.begin(ctx, "DegreeCentrality")
	m, err := centrality.Degree(e.g)
	o.end(err, attribute.Int("scored", len(m)))

	return m, err
}

// BetweennessCentrality scores members over the subgraph induced by members,
// or over the whole graph when none are given.
func (e *Engine) BetweennessCentrality(ctx context.Context, members ...string) (map[string]float64, error) {
	ctx, o := e.begin(ctx, "BetweennessCentrality", attribute.Int("members", len(members)))
	g := e.g
	if len(members) > 0 {
		g = e.g.Subgraph(members...)
	}
	m, err := centrality.Betweenness(ctx, g)
	o.end(err, attribute.Int("scored", len(m)))

	return m, err
}

// FindImportantNodes returns every member tied at the top degree centrality.
func (e *Engine) FindImportantNodes(ctx context.Context) ([]centrality.Score, error) {
	_, o := e.begin(ctx, "FindImportantNodes")
	top, err := centrality.Important(e.g)
	attrs := []attribute.KeyValue{attribute.Int("important", len(top))}
	if len(top) > 0 {
		attrs = append(attrs, attribute.Float64("score", top[0].Value))
	}
	o.end(err, attrs...)

	return top, err
}
