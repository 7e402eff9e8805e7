// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i -> (i+1) mod n for i=0..n-1; one-way on directed graphs.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := indexedIDs(cfg.idFn, 0, n)
		if err := addVertices(g, methodCycle, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, methodCycle, ids[i], ids[(i+1)%n], false); err != nil {
				return err
			}
		}

		return nil
	}
}
