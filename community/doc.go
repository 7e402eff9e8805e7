// SPDX-License-Identifier: MIT
// Package community analyzes how the two largest friend circles of a social
// graph relate to each other.
//
// Connect takes the two largest maximal cliques, finds the bottleneck of each
// (the member with the highest betweenness inside the clique's induced
// subgraph, smallest ID on ties) and reports whether the two bottlenecks can
// reach each other and how many hops apart they are.
//
// LargestCommunity expands the largest clique by one hop into its ego network.
package community
