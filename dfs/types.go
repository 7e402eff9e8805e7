// SPDX-License-Identifier: MIT
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound wraps core.ErrVertexNotFound for an absent start.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start vertex not found: %w", core.ErrVertexNotFound)
)

// Option configures a DFS run.
type Option func(*DFSOptions)

// DFSOptions holds the hooks and limits of one DFS run.
type DFSOptions struct {
	// Ctx is checked before every vertex is entered.
	Ctx context.Context

	// OnVisit runs when a vertex is discovered (pre-order). An error aborts the walk.
	OnVisit func(id string) error

	// OnExit runs once every descendant of a vertex is finished (post-order).
	// An error aborts the walk.
	OnExit func(id string) error

	// MaxDepth < 0 means unlimited; 0 visits only the root.
	MaxDepth int

	// FilterNeighbor returns false to keep the walk out of a neighbor.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts from every unvisited vertex in ID order,
	// producing one tree per reachable region.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, no depth limit,
// no filter and a single-root walk.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs the post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth bounds the recursion depth.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal walks every vertex, not only those reachable from start.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult is the outcome of a walk.
type DFSResult struct {
	// Order lists vertices as they finish (post-order).
	Order []string

	// Depth is the tree depth at which each vertex was discovered.
	Depth map[string]int

	// Parent links each non-root vertex to its discoverer. Roots are absent.
	Parent map[string]string

	// Visited marks every vertex the walk entered.
	Visited map[string]bool
}
