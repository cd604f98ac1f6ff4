// Package catalog declares the Pattern type, the Catalog container, and
// the sentinel errors of catalog construction.
package catalog

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for catalog construction.
var (
	// ErrNoPatterns indicates New was called with an empty pattern set.
	ErrNoPatterns = errors.New("catalog: pattern set is empty")

	// ErrEmptyPattern indicates a pattern with no signatures.
	ErrEmptyPattern = errors.New("catalog: pattern has no signatures")

	// ErrBadSpread indicates a pattern with a non-positive MaxSpread.
	ErrBadSpread = errors.New("catalog: pattern MaxSpread must be positive")

	// ErrBadSignature indicates a pattern containing a non-positive signature.
	ErrBadSignature = errors.New("catalog: pattern signature must be positive")

	// ErrDuplicatePattern indicates two patterns with the same signature
	// multiset and material restriction.
	ErrDuplicatePattern = errors.New("catalog: duplicate pattern")
)

// Pattern describes one instance of a multi-part assembly: the multiset of
// structural signatures its parts carry, and how spatially compact a
// matched instance is allowed to be.
//
// Signatures   – the part multiset; New sorts it into canonical ascending
// order, repeats allowed (a pattern with two washers lists the washer
// signature twice).
// MaxSpread    – maximum distance from a matched cluster's mean centroid
// to any member, in the same units as shell centroids. Must be positive.
// Material     – optional restriction to one material partition; the empty
// string means the pattern applies to any single partition. Either way a
// pattern never spans materials.
type Pattern struct {
	Signatures []int64
	MaxSpread  float32
	Material   string
}

// Size returns the number of parts (with multiplicity) in the pattern.
func (p Pattern) Size() int { return len(p.Signatures) }

// Counts returns the signature → required-count table of the pattern.
// The map is freshly allocated on every call.
func (p Pattern) Counts() map[int64]int {
	counts := make(map[int64]int, len(p.Signatures))
	for _, sig := range p.Signatures {
		counts[sig]++
	}
	return counts
}

// Key returns the canonical identity of the pattern's multiset plus its
// material restriction, e.g. "4,4,4" or "5,5,16@Steel". Used for duplicate
// detection and as the last deterministic ordering tie-break.
func (p Pattern) Key() string {
	sigs := make([]int64, len(p.Signatures))
	copy(sigs, p.Signatures)
	sort.Slice(sigs, func(i, j int) bool { return sigs[i] < sigs[j] })
	var b strings.Builder
	for i, sig := range sigs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(sig, 10))
	}
	if p.Material != "" {
		b.WriteByte('@')
		b.WriteString(p.Material)
	}
	return b.String()
}

// Catalog is a validated, canonicalized set of patterns. Immutable once
// built; share it freely across runs and goroutines.
type Catalog struct {
	patterns []Pattern
}

// Len returns the number of patterns in the catalog.
func (c *Catalog) Len() int { return len(c.patterns) }

// Patterns returns the canonicalized patterns in deterministic (canonical
// key ascending) order. The returned slice is freshly allocated.
func (c *Catalog) Patterns() []Pattern {
	out := make([]Pattern, len(c.patterns))
	copy(out, c.patterns)
	return out
}
