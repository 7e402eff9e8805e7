// SPDX-License-Identifier: MIT
package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// Betweenness computes normalized betweenness centrality for all vertices
// using Brandes' algorithm.
//
// Every vertex acts as a source once; paths follow NeighborIDs, so directed
// graphs use successors. Raw dependencies are divided by (n-1)(n-2) for
// n > 2, which for undirected graphs equals the classic pair-count
// normalization because each unordered pair is visited from both ends.
// Graphs with fewer than three vertices score 0 everywhere.
//
// ctx is checked between sources; on cancellation the context error is
// returned with no partial scores.
//
// Complexity: O(V·E) time, O(V+E) space.
func Betweenness(ctx context.Context, g core.Reader) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ids := g.Vertices()
	cb := make(map[string]float64, len(ids))
	for _, id := range ids {
		cb[id] = 0
	}
	n := len(ids)
	if n < 3 {
		return cb, nil
	}

	adj, err := snapshot(g, ids)
	if err != nil {
		return nil, err
	}

	for _, s := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stack, sigma, pred := brandesBFS(adj, s)
		brandesAccumulate(s, stack, sigma, pred, cb)
	}

	norm := float64((n - 1) * (n - 2))
	for id := range cb {
		cb[id] /= norm
	}

	return cb, nil
}

// snapshot copies the neighbor lists once so the per-source passes do not
// re-acquire graph locks. Self-loops never lie on a shortest path and are dropped.
func snapshot(g core.Reader, ids []string) (map[string][]string, error) {
	adj := make(map[string][]string, len(ids))
	for _, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("centrality: neighbors of %q: %w", id, err)
		}
		kept := nbrs[:0]
		for _, w := range nbrs {
			if w != id {
				kept = append(kept, w)
			}
		}
		adj[id] = kept
	}

	return adj, nil
}

// brandesBFS performs the BFS phase from source s, returning the visit
// stack, shortest-path counts and predecessor lists.
func brandesBFS(adj map[string][]string, s string) ([]string, map[string]float64, map[string][]string) {
	stack := make([]string, 0, len(adj))
	pred := make(map[string][]string, len(adj))
	sigma := map[string]float64{s: 1}
	dist := map[string]int{s: 0}

	queue := []string{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)

		for _, w := range adj[v] {
			if _, seen := dist[w]; !seen {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				pred[w] = append(pred[w], v)
			}
		}
	}

	return stack, sigma, pred
}

// brandesAccumulate back-propagates pair dependencies into cb.
func brandesAccumulate(s string, stack []string, sigma map[string]float64, pred map[string][]string, cb map[string]float64) {
	delta := make(map[string]float64, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range pred[w] {
			delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
		}
		if w != s {
			cb[w] += delta[w]
		}
	}
}
