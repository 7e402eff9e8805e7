// SPDX-License-Identifier: MIT
package clique

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// ExpandByOneHop builds the one-hop ego network of members.
//
// The result starts as the induced subgraph of members (attribute bags and
// edge IDs preserved) and then receives, for every member m, each neighbor w
// of m together with the edge m→w. Edges among neighbors that are not members
// are not copied. Directed graphs follow successors.
//
// Errors: ErrGraphNil, ErrEmptyClique, core.ErrVertexNotFound (wrapped).
// Complexity: O(V + E) for the induced copy plus O(Σ deg(m)).
func ExpandByOneHop(g *core.Graph, members []string) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(members) == 0 {
		return nil, ErrEmptyClique
	}
	for _, m := range members {
		if !g.HasVertex(m) {
			return nil, fmt.Errorf("clique: expand member %q: %w", m, core.ErrVertexNotFound)
		}
	}

	out := g.Subgraph(members...)
	for _, m := range members {
		nbrs, err := g.NeighborIDs(m)
		if err != nil {
			return nil, fmt.Errorf("clique: expand member %q: %w", m, err)
		}
		for _, w := range nbrs {
			if err = copyVertex(g, out, w); err != nil {
				return nil, err
			}
			if _, err = out.AddEdge(m, w); err != nil {
				return nil, fmt.Errorf("clique: expand edge %q→%q: %w", m, w, err)
			}
		}
	}

	return out, nil
}

// copyVertex adds id to dst carrying over its attribute bag from src.
func copyVertex(src, dst *core.Graph, id string) error {
	if dst.HasVertex(id) {
		return nil
	}
	v, err := src.Vertex(id)
	if err != nil {
		return fmt.Errorf("clique: copy vertex %q: %w", id, err)
	}
	if err = dst.AddVertex(id); err != nil {
		return err
	}
	for k, val := range v.Metadata {
		if err = dst.SetAttribute(id, k, val); err != nil {
			return err
		}
	}

	return nil
}
