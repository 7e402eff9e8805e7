// SPDX-License-Identifier: MIT
package centrality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// Sentinel errors for centrality computations.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrVertexNotFound wraps core.ErrVertexNotFound for members the graph lost mid-run.
	ErrVertexNotFound = fmt.Errorf("centrality: %w", core.ErrVertexNotFound)
)

// Score pairs a member with its centrality value.
type Score struct {
	ID    string  `json:"id" yaml:"id"`
	Value float64 `json:"value" yaml:"value"`
}
