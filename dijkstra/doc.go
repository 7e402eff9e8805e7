// SPDX-License-Identifier: MIT
// Package dijkstra computes hop-count shortest paths in social graphs.
//
// What:
//
//   - Dijkstra(g, Source(id), opts...) returns a distance for every vertex
//     (Unreachable = -1 when no path exists) and, with WithReturnPath(),
//     a predecessor map.
//   - Distance(g, start, end) answers a single query and never fails:
//     any invalid input or missing path yields -1.
//   - ShortestPath(g, start, end) returns the route itself.
//
// Every edge costs one hop. Directed graphs are followed in edge direction
// only. Self-loops never shorten a path.
//
// Determinism:
//
//	The heap orders entries by (distance, vertex ID), so among equal-length
//	routes the predecessor chosen is the lexicographically smallest settled one.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// See also: bfs.BFS, whose Depth map agrees with Dijkstra distances on every
// reachable vertex.
package dijkstra
