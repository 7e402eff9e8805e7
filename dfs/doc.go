// SPDX-License-Identifier: MIT
// Package dfs implements depth-first traversal and reachability on a
// core.Reader, supporting both directed and undirected graphs.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over disconnected components
//   - PathExists: the same walk stopped at the first sighting of a target,
//     kept as an independent check of bfs.PathExists.
//   - Components: friend circles from one forest walk, closing a circle
//     when the post-order hook unwinds past its root.
//
// Key Types:
//
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor, FullTraversal
//   - DFSResult: collects post-order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V)
//   - PathExists: Time O(V+E), Memory O(V)
//   - Components: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
