// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: the Reader interface consumed by algorithms,
// configuration getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

import "sync/atomic"

// Reader is the read-only graph surface every analysis package depends on.
// *Graph implements it; algorithms never need more than this.
type Reader interface {
	// Directed reports whether edges are one-way.
	Directed() bool

	// HasVertex reports vertex membership.
	HasVertex(id string) bool

	// HasEdge reports whether an edge from→to exists.
	HasEdge(from, to string) bool

	// Vertices returns all vertex IDs sorted ascending.
	Vertices() []string

	// NeighborIDs returns the out-neighbors of id sorted ascending.
	NeighborIDs(id string) ([]string, error)

	// InNeighborIDs returns the in-neighbors of id sorted ascending.
	InNeighborIDs(id string) ([]string, error)

	// Degree returns the number of edge endpoints incident to id.
	Degree(id string) (int, error)
}

var _ Reader = (*Graph)(nil)

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Directed    bool   `json:"directed" yaml:"directed"`
	AllowsLoops bool   `json:"allows_loops" yaml:"allows_loops"`
	VertexCount int    `json:"vertex_count" yaml:"vertex_count"`
	EdgeCount   int    `json:"edge_count" yaml:"edge_count"`
	SelfLoops   int    `json:"self_loops" yaml:"self_loops"`
	Version     uint64 `json:"version" yaml:"version"`
}

// Directed reports the construction-time orientation of all edges.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted.
// If false, AddEdge(v,v) returns ErrLoopNotAllowed.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Version returns the mutation counter of the graph.
//
// Two calls returning the same value observed the same vertex and edge sets,
// which makes Version a safe cache key for derived data.
// Complexity: O(1), lock-free.
func (g *Graph) Version() uint64 {
	return atomic.LoadUint64(&g.version)
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, count edges and self-loops, then release.
//
// Complexity: Time O(E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.SelfLoops++
		}
	}
	g.muEdgeAdj.RUnlock()

	stats.Version = g.Version()

	return &stats
}

// bump records a successful mutation.
func (g *Graph) bump() {
	atomic.AddUint64(&g.version, 1)
}
