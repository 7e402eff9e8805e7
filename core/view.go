// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (induced subgraphs).
// Determinism:
//   - Preserves vertex/edge IDs and directedness.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph containing only vertices in keep and
// only edges whose endpoints are both kept. IDs that are not vertices of g are
// ignored. Edge IDs and directedness are preserved; attribute bags are copied
// so the result never writes through to g.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	out := NewGraph(g.configOptions()...)
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = v.copy()
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	// Continue the ID sequence after the last ID used by g.
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for _, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			out.linkEdge(&Edge{ID: e.ID, From: e.From, To: e.To, Directed: e.Directed})
		}
	}

	return out
}

// Subgraph is InducedSubgraph over the listed vertex IDs.
func (g *Graph) Subgraph(ids ...string) *Graph {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}

	return InducedSubgraph(g, keep)
}
