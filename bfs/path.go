// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// PathExists reports whether end is reachable from start by following edges
// in their stored direction.
//
// The search keeps an explicit FIFO queue seeded with start. Each popped
// vertex's neighbors are scanned; the search stops the moment end appears
// among them. Vertices are marked visited when enqueued, so no vertex is
// queued twice.
//
// Policy:
//   - PathExists(x, x) is true for any present x (the empty path).
//   - An absent end yields (false, nil).
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors.
//
// Complexity: Time O(V + E), Space O(V).
func PathExists(g core.Reader, start, end string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return false, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if start == end {
		return true, nil
	}
	if !g.HasVertex(end) {
		return false, nil
	}

	visited := map[string]bool{start: true}
	queue := []string{start}
	var cur string
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]

		nbrs, err := g.NeighborIDs(cur)
		if err != nil {
			return false, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, cur, err)
		}
		for _, nbr := range nbrs {
			if nbr == end {
				return true, nil
			}
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	return false, nil
}

// Reachable returns the set of vertices reachable from start, start included.
//
// Errors: same as BFS.
// Complexity: Time O(V + E), Space O(V).
func Reachable(g core.Reader, start string) (map[string]bool, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(res.Order))
	for _, id := range res.Order {
		set[id] = true
	}

	return set, nil
}
