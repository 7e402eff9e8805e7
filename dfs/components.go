// SPDX-License-Identifier: MIT
package dfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/socnet/core"
)

// Components splits g into its friend circles: maximal groups of vertices
// joined by paths when edge direction is ignored (weak components for
// directed graphs). Each circle is sorted by ID; circles are ordered by size
// descending, then by first member.
//
// It runs one forest walk; a circle is closed when the walk unwinds back
// past its tree root.
//
// Errors: ErrGraphNil, ctx errors.
// Complexity: O(V + E).
func Components(ctx context.Context, g core.Reader) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var (
		out     = [][]string{}
		current []string
		open    int
	)
	view := core.Reader(g)
	if g.Directed() {
		view = undirected{g}
	}

	_, err := DFS(view, "",
		WithContext(ctx),
		WithFullTraversal(),
		WithOnVisit(func(string) error {
			open++

			return nil
		}),
		WithOnExit(func(id string) error {
			current = append(current, id)
			if open--; open == 0 {
				sort.Strings(current)
				out = append(out, current)
				current = nil
			}

			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}

		return out[i][0] < out[j][0]
	})

	return out, nil
}

// undirected presents successors and predecessors of a directed graph as
// one neighbor list.
type undirected struct {
	core.Reader
}

func (u undirected) NeighborIDs(id string) ([]string, error) {
	outs, err := u.Reader.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	ins, err := u.Reader.InNeighborIDs(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(outs)+len(ins))
	merged := make([]string, 0, len(outs)+len(ins))
	for _, list := range [][]string{outs, ins} {
		for _, n := range list {
			if !seen[n] {
				seen[n] = true
				merged = append(merged, n)
			}
		}
	}
	sort.Strings(merged)

	return merged, nil
}
