// SPDX-License-Identifier: MIT

package dijkstra

import "github.com/katalvlaran/socnet/core"

// Distance returns the number of hops on a shortest path from start to end.
//
// The search is seeded with (0, start) and stops as soon as end is popped
// from the heap. It never fails: Unreachable (-1) is returned when end cannot
// be reached, when either endpoint is absent, or when g is nil or empty.
// Distance(x, x) is 0 for any present x.
//
// Complexity: O((V + E) log V) worst case.
func Distance(g core.Reader, start, end string) int {
	if g == nil || !g.HasVertex(end) {
		return Unreachable
	}
	dist, _, err := Dijkstra(g, Source(start), withTarget(end))
	if err != nil {
		return Unreachable
	}

	return dist[end]
}

// ShortestPath returns one shortest path from start to end (inclusive) and
// its hop count. The path is nil and the count Unreachable when no path exists.
// Among equal-length paths the one through lexicographically smaller
// predecessors is preferred.
func ShortestPath(g core.Reader, start, end string) ([]string, int) {
	if g == nil || !g.HasVertex(end) {
		return nil, Unreachable
	}
	dist, prev, err := Dijkstra(g, Source(start), WithReturnPath(), withTarget(end))
	if err != nil || dist[end] == Unreachable {
		return nil, Unreachable
	}

	path := []string{end}
	for cur := end; cur != start; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[end]
}
