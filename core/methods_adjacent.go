// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, OutNeighborIDs, InNeighborIDs) and adjacency helpers.
// Determinism:
//   - Every neighbor listing is unique and sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the vertices reachable from id in one hop, sorted ascending.
//
// Neighborhood policy:
//   - Undirected graphs: every adjacent vertex (symmetric).
//   - Directed graphs: successors only (targets of edges leaving id).
//   - A self-loop lists id itself once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	return g.adjacentIDs(id, false)
}

// OutNeighborIDs is NeighborIDs under its directed-graph name.
func (g *Graph) OutNeighborIDs(id string) ([]string, error) {
	return g.adjacentIDs(id, false)
}

// InNeighborIDs returns the vertices with an edge into id, sorted ascending.
// For undirected graphs it equals NeighborIDs.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: Time O(d log d), Space O(d).
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	return g.adjacentIDs(id, true)
}

// adjacentIDs snapshots one adjacency bucket under consistent locks.
func (g *Graph) adjacentIDs(id string, incoming bool) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Lock order muVert -> muEdgeAdj, same as mutators.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("neighbors of %q: %w", id, ErrVertexNotFound)
	}

	bucket := g.out[id]
	if incoming && g.directed {
		bucket = g.in[id]
	}

	ids := make([]string, 0, len(bucket))
	for nbr := range bucket {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// setAdjacency records index[a][b] = eid, allocating the inner map on demand.
// Must be called ONLY under muEdgeAdj write lock.
func setAdjacency(index map[string]map[string]string, a, b, eid string) {
	inner := index[a]
	if inner == nil {
		inner = make(map[string]string)
		index[a] = inner
	}
	inner[b] = eid
}

// deleteAdjacency removes index[a][b] and prunes the inner map when empty.
// Must be called ONLY under muEdgeAdj write lock.
func deleteAdjacency(index map[string]map[string]string, a, b string) {
	inner := index[a]
	if inner == nil {
		return
	}
	delete(inner, b)
	if len(inner) == 0 {
		delete(index, a)
	}
}
