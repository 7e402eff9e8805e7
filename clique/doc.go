// SPDX-License-Identifier: MIT
// Package clique enumerates tightly-knit groups of a social graph.
//
// MaximalCliques runs Bron–Kerbosch with Tomita pivoting over the undirected
// view of a core.Reader: directed edges count in either direction and
// self-loops are ignored. Every clique is returned sorted by member ID and the
// list is ordered by size ascending (ties by member list), so the largest
// clique is always last.
//
// ExpandByOneHop grows a clique into its one-hop ego network: the clique's
// induced subgraph plus every member's neighbors and the member-to-neighbor
// edges. The result is a fresh graph; the source is never mutated.
//
// Errors:
//
//	ErrGraphNil       - nil graph.
//	ErrEmptyClique    - ExpandByOneHop called without members.
//	core.ErrVertexNotFound (wrapped) - a member is absent from the graph.
//
// Complexity: enumeration is O(3^(n/3)) in the worst case; the pivot keeps it
// near-linear in the number of cliques on sparse social graphs.
package clique
