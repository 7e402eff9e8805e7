// SPDX-License-Identifier: MIT
package clique

import "errors"

// Sentinel errors for clique operations.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrEmptyClique is returned when an expansion is requested for no members.
	ErrEmptyClique = errors.New("clique: no members")
)

// set is a string membership set.
type set map[string]struct{}

func (s set) has(id string) bool {
	_, ok := s[id]

	return ok
}
