// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and copying
// social graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be read from many goroutines
// while analyses run.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist (the "node not found" case).
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a member of the social graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata is an attribute bag that algorithms never read; it is passed
// through to copies and subgraphs untouched (shared, not deep-copied).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary caller data.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Edges carry no weight: every hop costs exactly one.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed reports whether the edge is one-way.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of all edges
// (true = directed follower graph, false = undirected friendship graph).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory adjacency store every engine reads from.
//
// muVert protects the vertex catalog; muEdgeAdj protects the edge catalog and
// both adjacency indexes. Lock order is always muVert -> muEdgeAdj.
// version is bumped atomically on every successful mutation and lets callers
// key caches by graph content instead of object identity.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, out and in

	// Configuration flags
	directed   bool // edge orientation
	allowLoops bool // allow self-loops

	// Counters
	nextEdgeID uint64 // atomic edge ID generator
	version    uint64 // atomic mutation counter

	// Storage
	vertices map[string]*Vertex // vertex ID → Vertex
	edges    map[string]*Edge   // edge ID → Edge

	// out[from][to] = edgeID; undirected edges are mirrored.
	out map[string]map[string]string
	// in[to][from] = edgeID; only populated for directed graphs.
	in map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string]map[string]string),
		in:       make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
