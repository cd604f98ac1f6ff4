// Package discover declares the discovery options and sentinel errors.
package discover

import (
	"errors"

	"goki.dev/mat32/v2"
)

// Sentinel errors for discovery configuration.
var (
	// ErrBadRadius indicates Cooccurrence was asked to run with a
	// non-positive neighborhood radius.
	ErrBadRadius = errors.New("discover: co-occurrence radius must be positive")
)

// Options configures catalog discovery.
//
// Radius    – neighborhood radius for Cooccurrence, in centroid units.
// Must be positive in that mode; scene-scale dependent, so there is no
// meaningful default.
// MaxSpread – MaxSpread assigned to GlobalRatio-inferred patterns.
// Non-positive values fall back to +Inf.
// MinCount  – minimum occurrences for a co-occurrence multiset to become
// a pattern. Non-positive values fall back to 2 (a multiset seen once
// is an observation, not a pattern).
type Options struct {
	Radius    float32
	MaxSpread float32
	MinCount  int
}

// DefaultOptions returns the default discovery configuration:
// MaxSpread = +Inf, MinCount = 2, Radius unset.
func DefaultOptions() Options {
	return Options{
		MaxSpread: mat32.Infinity,
		MinCount:  2,
	}
}
