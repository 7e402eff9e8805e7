// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
//
// Determinism & Identity:
//   - Carries over nextEdgeID so that future AddEdge calls on the clone continue the same
//     textual sequence and never collide with edges copied from the source.
//   - Vertex attribute bags are copied one level deep; values are shared.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := NewGraph(g.configOptions()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	var id string
	var v *Vertex
	for id, v = range g.vertices {
		clone.vertices[id] = v.copy()
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var e *Edge
	for _, e = range g.edges {
		clone.linkEdge(&Edge{ID: e.ID, From: e.From, To: e.To, Directed: e.Directed})
	}
	atomic.StoreUint64(&clone.version, atomic.LoadUint64(&g.version))

	return clone
}

// copy returns v with its own Metadata map.
func (v *Vertex) copy() *Vertex {
	md := make(map[string]interface{}, len(v.Metadata))
	for k, val := range v.Metadata {
		md[k] = val
	}

	return &Vertex{ID: v.ID, Metadata: md}
}

// configOptions rebuilds the option list that produced g.
// Caller holds muVert (read or write).
func (g *Graph) configOptions() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
