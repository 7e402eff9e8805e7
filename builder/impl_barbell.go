// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_barbell.go - implementation of Barbell(k, bridge) constructor.
//
// Layout (indices through cfg.idFn):
//   - left clique:  0 .. k-1
//   - bridge path:  k .. k+bridge-1
//   - right clique: k+bridge .. 2k+bridge-1
//
// The last left member (k-1) and the first right member (k+bridge) are the
// attachment points, so they carry the highest betweenness of their clique.
//
// Contract:
//   - k ≥ 2, bridge ≥ 0 (else ErrTooFewVertices).
//   - All edges are mutual on directed graphs.
//
// Complexity: O(k² + bridge).

package builder

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

const (
	methodBarbell  = "Barbell"
	minBarbellBell = 2
)

// Barbell returns a Constructor that builds two K_k communities joined by a
// path with bridge inner vertices (bridge == 0 joins the cliques directly).
func Barbell(k, bridge int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minBarbellBell || bridge < 0 {
			return fmt.Errorf("%s: k=%d (min %d), bridge=%d (min 0): %w",
				methodBarbell, k, minBarbellBell, bridge, ErrTooFewVertices)
		}

		left := indexedIDs(cfg.idFn, 0, k)
		inner := indexedIDs(cfg.idFn, k, bridge)
		right := indexedIDs(cfg.idFn, k+bridge, k)
		for _, ids := range [][]string{left, inner, right} {
			if err := addVertices(g, methodBarbell, ids); err != nil {
				return err
			}
		}
		if err := linkAll(g, methodBarbell, left); err != nil {
			return err
		}
		if err := linkAll(g, methodBarbell, right); err != nil {
			return err
		}

		chain := make([]string, 0, bridge+2)
		chain = append(chain, left[k-1])
		chain = append(chain, inner...)
		chain = append(chain, right[0])
		for i := 1; i < len(chain); i++ {
			if err := link(g, methodBarbell, chain[i-1], chain[i], true); err != nil {
				return err
			}
		}

		return nil
	}
}
