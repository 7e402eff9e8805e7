// SPDX-License-Identifier: MIT
// Package centrality scores how important each member of a social graph is.
//
// Degree centrality normalizes a member's degree by the largest degree any
// member could have, |V|-1. Betweenness centrality (Brandes' algorithm)
// measures the fraction of shortest paths between other pairs that pass
// through a member; inside a community it marks the bottleneck through which
// the group reaches everybody else.
//
// Both scores are returned as map[string]float64. Ranked turns such a map into
// a deterministic slice (score desc, ID asc); Important returns every member
// tied at the maximum degree centrality.
//
// Complexity:
//
//   - Degree:      O(V).
//   - Betweenness: O(V·E) time, O(V+E) space.
//   - Important:   O(V log V).
package centrality
