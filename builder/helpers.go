// SPDX-License-Identifier: MIT
// Package builder provides internal helper functions used by Constructor
// implementations to build common social topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// addVertices inserts ids in order, wrapping the first failure with method context.
// Complexity: O(len(ids)).
func addVertices(g *core.Graph, method string, ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// indexedIDs resolves idFn over [offset, offset+n).
func indexedIDs(idFn IDFn, offset, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(offset + i)
	}

	return ids
}

// link adds u→v. For directed graphs with mutual set, v→u is added as well,
// modelling a reciprocal follow.
func link(g *core.Graph, method, u, v string, mutual bool) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}
	if mutual && g.Directed() {
		if _, err := g.AddEdge(v, u); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, v, u, err)
		}
	}

	return nil
}

// linkAll connects every unordered pair in ids (mutually on directed graphs).
// Complexity: O(m²) where m = len(ids).
func linkAll(g *core.Graph, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := link(g, method, ids[i], ids[j], true); err != nil {
				return err
			}
		}
	}

	return nil
}
