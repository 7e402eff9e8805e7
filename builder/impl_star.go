// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID "Center".
//   - Adds leaves via cfg.idFn for i = 1..n-1 and connects Center–leaf.
//     Directed graphs get both Center → leaf and leaf → Center.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterVertexID is the fixed hub identifier used by Star.
	CenterVertexID = "Center"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves. In a friendship network every pair of
// leaves shares the hub as a mutual friend.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		leaves := indexedIDs(cfg.idFn, 1, n-1)
		if err := addVertices(g, methodStar, leaves); err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := link(g, methodStar, CenterVertexID, leaf, true); err != nil {
				return err
			}
		}

		return nil
	}
}
