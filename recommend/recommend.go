// SPDX-License-Identifier: MIT
package recommend

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/socnet/core"
)

type pairKey struct{ a, b string }

// Scores counts, for every unconnected pair of co-neighbors, how many common
// neighbors discovered it, and returns all pairs ranked by count desc, A asc,
// B asc. Directed graphs use successors as the neighborhood.
//
// Complexity: O(Σ deg(n)²) connectivity checks.
func Scores(g core.Reader, opts ...Option) ([]Pair, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}

	connected := o.Reach
	if connected == nil {
		connected = func(a, b string) (bool, error) {
			return g.HasEdge(a, b) || g.HasEdge(b, a), nil
		}
	}

	counts := make(map[pairKey]int)
	for _, n := range g.Vertices() {
		if ctxErr := o.Ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		nbrs, err := g.NeighborIDs(n)
		if err != nil {
			return nil, fmt.Errorf("recommend: neighbors of %q: %w", n, err)
		}
		nbrs = withoutSelf(nbrs, n)

		// nbrs is sorted, so i < j gives a < b.
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				a, b := nbrs[i], nbrs[j]
				ok, err := connected(a, b)
				if err != nil {
					return nil, fmt.Errorf("recommend: check %q-%q: %w", a, b, err)
				}
				if !ok {
					counts[pairKey{a, b}]++
				}
			}
		}
	}

	pairs := make([]Pair, 0, len(counts))
	for k, c := range counts {
		pairs = append(pairs, Pair{A: k.a, B: k.b, Count: c})
	}
	sort.Slice(pairs, func(i, j int) bool { return rankLess(pairs[i], pairs[j]) })

	return pairs, nil
}

// Pairs returns the recommended pairs after applying the configured cutoff.
// An empty graph or a graph without candidates yields an empty slice.
func Pairs(g core.Reader, opts ...Option) ([]Pair, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}
	ranked, err := Scores(g, opts...)
	if err != nil {
		return nil, err
	}

	return Trim(ranked, o.Limit, o.Cutoff), nil
}

// Trim applies cutoff with limit k to an already ranked slice.
func Trim(ranked []Pair, k int, cutoff Cutoff) []Pair {
	if cutoff == CutoffTopK {
		if len(ranked) > k {
			ranked = ranked[:k]
		}

		return ranked
	}
	if len(ranked) < k {
		return ranked
	}

	// ranked is count-descending, so the ascending list's position len-k is
	// ranked[k-1].
	threshold := ranked[k-1].Count
	out := make([]Pair, 0, k)
	for _, p := range ranked {
		if p.Count <= threshold {
			break
		}
		out = append(out, p)
	}

	return out
}

func resolve(g core.Reader, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g == nil {
		return o, ErrGraphNil
	}

	return o, nil
}

func rankLess(x, y Pair) bool {
	if x.Count != y.Count {
		return x.Count > y.Count
	}
	if x.A != y.A {
		return x.A < y.A
	}

	return x.B < y.B
}

func withoutSelf(ids []string, self string) []string {
	for i, id := range ids {
		if id == self {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}

	return ids
}
