// SPDX-License-Identifier: MIT
package dfs

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// walker carries the state of one DFS run.
type walker struct {
	g    core.Reader
	opts DFSOptions
	res  *DFSResult
}

// DFS walks g depth-first from startID, or from every unvisited vertex in ID
// order when WithFullTraversal is given (startID is then ignored). Neighbors
// are explored in ascending ID order, so results are reproducible.
//
// On a hook error or cancellation the partial result is returned together
// with the error and Order is cleared.
//
// Complexity: O(V + E) plus hook cost.
func DFS(g core.Reader, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	ids := g.Vertices()
	w := &walker{g: g, opts: o, res: &DFSResult{
		Order:   make([]string, 0, len(ids)),
		Depth:   make(map[string]int, len(ids)),
		Parent:  make(map[string]string, len(ids)),
		Visited: make(map[string]bool, len(ids)),
	}}

	roots := []string{startID}
	if o.FullTraversal {
		roots = ids
	}
	for _, root := range roots {
		if w.res.Visited[root] {
			continue
		}
		if err := w.enter(root, 0); err != nil {
			w.res.Order = nil

			return w.res, err
		}
	}

	return w.res, nil
}

// enter discovers id at depth, recurses into its unvisited neighbors and
// finally records id as finished.
func (w *walker) enter(id string, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbrs, err := w.g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, n := range nbrs {
		if n == id || w.res.Visited[n] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(n) {
			continue
		}
		w.res.Parent[n] = id
		if err = w.enter(n, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
