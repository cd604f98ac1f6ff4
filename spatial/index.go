package spatial

import (
	"sort"

	"goki.dev/mat32/v2"

	"github.com/katalvlaran/reshell/core"
)

// Index answers nearest-neighbor queries over the centroids of one
// material partition's shells. Immutable once built; concurrent readers
// are safe because nothing is mutated after NewIndex returns.
type Index struct {
	shells []core.Shell
	bySig  map[int64][]int // signature -> indices into shells
}

// NewIndex builds the per-signature buckets for the given shells.
// The caller is expected to pass exactly one material partition; the index
// itself does not re-check material purity.
//
// Time: O(n). Memory: O(n).
func NewIndex(shells []core.Shell) *Index {
	ix := &Index{
		shells: shells,
		bySig:  make(map[int64][]int),
	}
	for i, sh := range shells {
		sig := sh.Fingerprint.Signature
		ix.bySig[sig] = append(ix.bySig[sig], i)
	}
	return ix
}

// Len returns the number of indexed shells.
func (ix *Index) Len() int { return len(ix.shells) }

// Count returns how many indexed shells carry the given signature.
func (ix *Index) Count(sig int64) int { return len(ix.bySig[sig]) }

// Nearest returns up to k shells of exactly signature sig, ordered by
// ascending Euclidean distance from the given point. Shells for which
// skip returns true are not considered (the matcher passes its
// already-assigned predicate here). Ties on distance break by centroid
// X, then Y, then Z, then shell id, so results are independent of input
// ordering.
//
// Time: O(b log b), b = bucket size for sig.
func (ix *Index) Nearest(from mat32.Vec3, sig int64, k int, skip func(id int) bool) []core.Shell {
	if k <= 0 {
		return nil
	}
	cand := make([]int, 0, len(ix.bySig[sig]))
	for _, i := range ix.bySig[sig] {
		if skip != nil && skip(ix.shells[i].ID) {
			continue
		}
		cand = append(cand, i)
	}
	sort.Slice(cand, func(a, b int) bool {
		sa, sb := ix.shells[cand[a]], ix.shells[cand[b]]
		da, db := sa.Centroid.DistTo(from), sb.Centroid.DistTo(from)
		if da != db {
			return da < db
		}
		return Less(sa, sb)
	})
	if len(cand) > k {
		cand = cand[:k]
	}
	out := make([]core.Shell, len(cand))
	for j, i := range cand {
		out[j] = ix.shells[i]
	}
	return out
}

// Within returns every indexed shell whose centroid lies within radius of
// from (inclusive), ordered by the stable spatial key. The probe shell
// itself, if indexed, is part of the result — discovery counts it as a
// member of its own neighborhood.
//
// Time: O(n log n) in the result size bound.
func (ix *Index) Within(from mat32.Vec3, radius float32) []core.Shell {
	if radius < 0 {
		return nil
	}
	var out []core.Shell
	for _, sh := range ix.shells {
		if sh.Centroid.DistTo(from) <= radius {
			out = append(out, sh)
		}
	}
	sort.Slice(out, func(a, b int) bool { return Less(out[a], out[b]) })
	return out
}

// Anchors returns all shells of the given signature sorted by the stable
// spatial key (centroid X, then Y, then Z, then id). This is the order in
// which the matcher tries anchor candidates, chosen so that results are
// reproducible run-to-run and independent of input ordering.
func (ix *Index) Anchors(sig int64) []core.Shell {
	idx := ix.bySig[sig]
	out := make([]core.Shell, len(idx))
	for j, i := range idx {
		out[j] = ix.shells[i]
	}
	sort.Slice(out, func(a, b int) bool { return Less(out[a], out[b]) })
	return out
}

// Less is the stable spatial ordering key shared by every query and by
// the matcher's singleton emission:
// centroid X, then Y, then Z, then shell id as the final tie-break.
func Less(a, b core.Shell) bool {
	if a.Centroid.X != b.Centroid.X {
		return a.Centroid.X < b.Centroid.X
	}
	if a.Centroid.Y != b.Centroid.Y {
		return a.Centroid.Y < b.Centroid.Y
	}
	if a.Centroid.Z != b.Centroid.Z {
		return a.Centroid.Z < b.Centroid.Z
	}
	return a.ID < b.ID
}
