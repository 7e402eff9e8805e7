// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left IDs are cfg.leftPrefix+i, right IDs cfg.rightPrefix+j.
//   - Emits L_i–R_j for i asc, j asc; mutual on directed graphs.
//
// Complexity: O(n1+n2) vertices + O(n1*n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}: two groups
// where everybody knows everybody on the other side and nobody on their own.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := indexedIDs(SymbolNumberIDFn(cfg.leftPrefix), 0, n1)
		right := indexedIDs(SymbolNumberIDFn(cfg.rightPrefix), 0, n2)
		if err := addVertices(g, methodCompleteBipartite, left); err != nil {
			return err
		}
		if err := addVertices(g, methodCompleteBipartite, right); err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err := link(g, methodCompleteBipartite, u, v, true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
