// Package assemble declares the Assembly result type, run Options, and
// the matcher's sentinel errors.
package assemble

import (
	"errors"

	"goki.dev/mat32/v2"

	"github.com/katalvlaran/reshell/catalog"
	"github.com/katalvlaran/reshell/core"
	"github.com/katalvlaran/reshell/spatial"
)

// Sentinel errors for run configuration.
var (
	// ErrNoCatalog indicates a nil catalog with no discovery mode selected.
	ErrNoCatalog = errors.New("assemble: no catalog supplied and no discovery mode selected")

	// ErrBadDiscovery indicates an unrecognized DiscoveryMode value.
	ErrBadDiscovery = errors.New("assemble: unknown discovery mode")
)

// DiscoveryMode selects how a catalog is obtained when none is supplied.
//
// NoDiscovery  – a catalog is required; a nil one is a caller error.
// GlobalRatio  – infer one pattern per partition from the GCD of its
// signature counts (discover.GlobalRatio).
// Cooccurrence – infer patterns from local signature co-occurrence
// histograms (discover.Cooccurrence); requires Options.Radius.
type DiscoveryMode int

const (
	// NoDiscovery requires an explicit catalog.
	NoDiscovery DiscoveryMode = iota

	// GlobalRatio infers patterns from global signature-count ratios.
	GlobalRatio

	// Cooccurrence infers patterns from neighborhood co-occurrence counts.
	Cooccurrence
)

// Options configures one matcher run.
//
// Discovery   – how to obtain a catalog when the supplied one is nil.
// Ignored when a catalog is supplied.
// Radius      – neighborhood radius for Cooccurrence discovery, in
// centroid units. Must be positive in that mode.
// RatioSpread – MaxSpread assigned to GlobalRatio-discovered patterns.
// Defaults to +Inf (ratio inference carries no spatial information of its
// own, so by default it does not constrain compactness).
type Options struct {
	Discovery   DiscoveryMode
	Radius      float32
	RatioSpread float32
}

// DefaultOptions returns the default run configuration:
// NoDiscovery, no radius, RatioSpread = +Inf.
func DefaultOptions() Options {
	return Options{
		Discovery:   NoDiscovery,
		RatioSpread: mat32.Infinity,
	}
}

// Assembly is one reconstructed instance: the member shells, the pattern
// they matched (nil for a singleton), and the mean of the member centroids
// — exposed so a caller can position a new parent/group object without
// recomputation.
type Assembly struct {
	Shells   []core.Shell
	Pattern  *catalog.Pattern
	Centroid mat32.Vec3
}

// Singleton reports whether the assembly is a one-shell fallback with no
// matched pattern.
func (a Assembly) Singleton() bool { return a.Pattern == nil }

// Handles returns the member shells' opaque back-references, in member
// order, for the caller to act on the original geometry.
func (a Assembly) Handles() []any {
	out := make([]any, len(a.Shells))
	for i, sh := range a.Shells {
		out[i] = sh.Handle
	}
	return out
}

// Spread returns the assembly's compactness: the maximum distance from
// its centroid to any member shell's centroid.
func (a Assembly) Spread() float32 {
	return spatial.Spread(a.Shells, a.Centroid)
}
