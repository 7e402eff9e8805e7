// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Connects every unordered pair {i<j}; directed graphs get both directions.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n,
// a single clique where everybody knows everybody.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := indexedIDs(cfg.idFn, 0, n)
		if err := addVertices(g, methodComplete, ids); err != nil {
			return err
		}

		return linkAll(g, methodComplete, ids)
	}
}
