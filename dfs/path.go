// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// errFound stops the walker once the target is discovered.
var errFound = errors.New("dfs: target found")

// PathExists reports whether end is reachable from start using recursive
// depth-first exploration with a visited set. The walk returns the instant
// end is discovered.
//
// Policy matches bfs.PathExists:
//   - PathExists(x, x) is true for any present x.
//   - An absent end yields (false, nil).
//
// Errors: ErrGraphNil, ErrStartVertexNotFound.
//
// Complexity: Time O(V + E), Space O(V) for the recursion stack.
func PathExists(g core.Reader, start, end string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return false, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return false, nil
	}

	_, err := DFS(g, start, WithOnVisit(func(id string) error {
		if id == end {
			return errFound
		}

		return nil
	}))
	switch {
	case errors.Is(err, errFound):
		return true, nil
	case err != nil:
		return false, err
	}

	return false, nil
}
