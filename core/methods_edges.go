// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/FilterEdges,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge connects from and to, creating missing endpoints.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj; if the edge already exists return its ID (idempotent).
//  4. Generate eid, store the edge, link out (and mirror or in-index).
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrLoopNotAllowed: if from == to and loops are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if eid, ok := g.out[from][to]; ok {
		return eid, nil // existing edge: no-op
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Directed: g.directed}
	g.linkEdge(e)
	g.bump()

	return eid, nil
}

// linkEdge stores e in the catalog and both adjacency indexes.
// Must be called under muEdgeAdj write lock.
func (g *Graph) linkEdge(e *Edge) {
	g.edges[e.ID] = e
	setAdjacency(g.out, e.From, e.To, e.ID)
	if e.Directed {
		setAdjacency(g.in, e.To, e.From, e.ID)
		return
	}
	if e.From != e.To {
		setAdjacency(g.out, e.To, e.From, e.ID)
	}
}

// HasEdge reports whether an edge from→to exists.
//
// Undirected edges are mirrored, so HasEdge is symmetric for undirected graphs.
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.out[from][to]

	return ok
}

// Edges returns all edges sorted by Edge.ID asc.
// Returned pointers reference live catalog entries; treat them as read-only.
//
// Complexity: O(E log E). Concurrency: read lock on muEdgeAdj.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// FilterEdges removes all edges failing the predicate.
//
// Contract:
//   - pred is pure; it must not call back into g.
//   - Vertices are kept even when they lose every edge.
//
// Complexity: O(E). Concurrency: write lock on muEdgeAdj.
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	removed := false
	for eid, e := range g.edges {
		if pred(e) {
			continue
		}
		delete(g.edges, eid)
		deleteAdjacency(g.out, e.From, e.To)
		if e.Directed {
			deleteAdjacency(g.in, e.To, e.From)
		} else {
			deleteAdjacency(g.out, e.To, e.From)
		}
		removed = true
	}
	if removed {
		g.bump()
	}
}

// nextEdgeID returns a new unique textual edge ID.
//
// Uses a monotonic uint64 counter incremented atomically and
// produces "e" + decimal digits without fmt allocations.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeIDLess orders "e2" before "e10".
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
