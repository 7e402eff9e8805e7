// SPDX-License-Identifier: MIT
package clique

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/socnet/core"
)

// MaximalCliques returns every maximal clique of g, each sorted by ID, ordered
// by size ascending then lexicographically by member list.
// Isolated vertices form 1-cliques; an empty graph yields an empty slice.
// ctx is checked on every recursion step.
func MaximalCliques(ctx context.Context, g core.Reader) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	adj, err := undirectedView(g)
	if err != nil {
		return nil, err
	}
	if len(adj) == 0 {
		return [][]string{}, nil
	}

	e := &enumerator{ctx: ctx, adj: adj}
	p := make(set, len(adj))
	for id := range adj {
		p[id] = struct{}{}
	}
	if err = e.expand(nil, p, set{}); err != nil {
		return nil, err
	}

	sort.Slice(e.found, func(i, j int) bool { return lessClique(e.found[i], e.found[j]) })
	if e.found == nil {
		e.found = [][]string{}
	}

	return e.found, nil
}

// Largest returns the last clique of MaximalCliques. ok is false when g has
// no vertices.
func Largest(ctx context.Context, g core.Reader) (members []string, ok bool, err error) {
	all, err := MaximalCliques(ctx, g)
	if err != nil || len(all) == 0 {
		return nil, false, err
	}

	return all[len(all)-1], true, nil
}

// enumerator holds the recursion state of one Bron–Kerbosch run.
type enumerator struct {
	ctx   context.Context
	adj   map[string]set
	found [][]string
}

// expand reports r when it cannot be extended, otherwise branches on every
// candidate outside the pivot's neighborhood.
func (e *enumerator) expand(r []string, p, x set) error {
	if err := e.ctx.Err(); err != nil {
		return err
	}
	if len(p) == 0 {
		if len(x) == 0 && len(r) > 0 {
			c := append([]string(nil), r...)
			sort.Strings(c)
			e.found = append(e.found, c)
		}

		return nil
	}

	pivotNbrs := e.adj[e.pivot(p, x)]
	for _, v := range sortedKeys(p) {
		if pivotNbrs.has(v) {
			continue
		}
		nv := e.adj[v]
		if err := e.expand(append(r, v), intersect(p, nv), intersect(x, nv)); err != nil {
			return err
		}
		delete(p, v)
		x[v] = struct{}{}
	}

	return nil
}

// pivot picks the vertex of p ∪ x with the most neighbors in p (Tomita),
// preferring the smallest ID on ties.
func (e *enumerator) pivot(p, x set) string {
	best, bestN := "", -1
	for _, pool := range []set{p, x} {
		for u := range pool {
			n := 0
			for w := range e.adj[u] {
				if p.has(w) {
					n++
				}
			}
			if n > bestN || (n == bestN && u < best) {
				best, bestN = u, n
			}
		}
	}

	return best
}

// undirectedView symmetrizes g's adjacency and drops self-loops.
func undirectedView(g core.Reader) (map[string]set, error) {
	ids := g.Vertices()
	adj := make(map[string]set, len(ids))
	for _, id := range ids {
		adj[id] = set{}
	}
	for _, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("clique: neighbors of %q: %w", id, err)
		}
		for _, w := range nbrs {
			if w == id {
				continue
			}
			adj[id][w] = struct{}{}
			if ws, ok := adj[w]; ok {
				ws[id] = struct{}{}
			}
		}
	}

	return adj, nil
}

func intersect(a, b set) set {
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make(set, len(a))
	for id := range a {
		if b.has(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

func sortedKeys(s set) []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// lessClique orders by size, then member-wise.
func lessClique(a, b []string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
