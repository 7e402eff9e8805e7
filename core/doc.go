// Package core provides the thread-safe in-memory Graph store that every
// socnet analysis reads from.
//
// The Graph G = (V,E) is a simple graph fixed at construction time:
//
//   - Directed (follower) or undirected (friendship) edges (WithDirected)
//   - Optional self-loops (WithLoops)
//   - At most one edge per ordered pair; AddEdge is idempotent
//   - Constant-time edge lookups via nested maps:
//     out[from][to] = edgeID, in[to][from] = edgeID (directed only)
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//   - A Version counter bumped on every successful mutation
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                      // O(1), idempotent
//	SetAttribute(id, key string, value any) error   // O(1)
//	HasVertex(id string) bool                       // O(1)
//	Vertices() []string                             // O(V log V), sorted
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1), idempotent
//	HasEdge(from, to string) bool                       // O(1)
//	Edges() []*Edge                                     // O(E log E), sorted by ID
//	FilterEdges(pred func(*Edge) bool)                  // O(E)
//
//	// Neighborhood
//	NeighborIDs(id string) ([]string, error)   // successors, sorted
//	InNeighborIDs(id string) ([]string, error) // predecessors, sorted
//	Degree(id string) (int, error)             // incident endpoints
//
//	// Copies and views
//	Clone() *Graph
//	CloneEmpty() *Graph
//	InducedSubgraph(g *Graph, keep map[string]bool) *Graph
//	Subgraph(ids ...string) *Graph
//
// Analyses in sibling packages accept the narrow Reader interface, so any
// adjacency source can be analyzed without copying into a Graph.
//
// Errors:
//
//	ErrEmptyVertexID  - empty vertex ID.
//	ErrVertexNotFound - vertex lookup failed.
//	ErrLoopNotAllowed - self-loop on a graph built without WithLoops.
package core
