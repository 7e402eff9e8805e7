// SPDX-License-Identifier: MIT
package recommend

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("recommend: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("recommend: invalid option supplied")
)

// DefaultLimit is the k of "top k" recommendations.
const DefaultLimit = 10

// Pair is a recommended connection between A and B (A < B) discovered
// through Count common neighbors.
type Pair struct {
	A     string `json:"a" yaml:"a"`
	B     string `json:"b" yaml:"b"`
	Count int    `json:"count" yaml:"count"`
}

// Cutoff selects how Pairs trims the ranked candidate list.
type Cutoff int

const (
	// CutoffStrict keeps pairs whose count exceeds the k-th highest count.
	CutoffStrict Cutoff = iota
	// CutoffTopK keeps exactly the k best-ranked pairs.
	CutoffTopK
)

// String implements fmt.Stringer.
func (c Cutoff) String() string {
	switch c {
	case CutoffStrict:
		return "strict"
	case CutoffTopK:
		return "topk"
	default:
		return fmt.Sprintf("Cutoff(%d)", int(c))
	}
}

// ParseCutoff maps "strict" and "topk" to their Cutoff.
func ParseCutoff(s string) (Cutoff, error) {
	switch s {
	case "strict", "":
		return CutoffStrict, nil
	case "topk":
		return CutoffTopK, nil
	default:
		return 0, fmt.Errorf("%w: unknown cutoff %q", ErrOptionViolation, s)
	}
}

// ReachFunc reports whether a and b are already connected.
type ReachFunc func(a, b string) (bool, error)

// Option configures Scores and Pairs.
type Option func(*Options)

// Options holds the recommendation parameters.
type Options struct {
	// Ctx is checked once per member.
	Ctx context.Context

	// Limit is k; must be > 0.
	Limit int

	// Cutoff is the trimming policy used by Pairs.
	Cutoff Cutoff

	// Reach overrides the direct-edge connectivity check when non-nil.
	Reach ReachFunc

	err error
}

// DefaultOptions returns Background context, DefaultLimit, CutoffStrict and
// the direct-edge check.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Limit:  DefaultLimit,
		Cutoff: CutoffStrict,
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLimit sets k. Non-positive values are recorded as ErrOptionViolation.
func WithLimit(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: limit must be positive (%d)", ErrOptionViolation, k)

			return
		}
		o.Limit = k
	}
}

// WithCutoff selects the trimming policy.
func WithCutoff(c Cutoff) Option {
	return func(o *Options) {
		if c != CutoffStrict && c != CutoffTopK {
			o.err = fmt.Errorf("%w: %s", ErrOptionViolation, c)

			return
		}
		o.Cutoff = c
	}
}

// WithReachability replaces the direct-edge check with fn.
func WithReachability(fn ReachFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Reach = fn
		}
	}
}
