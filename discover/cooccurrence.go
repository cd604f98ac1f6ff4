package discover

import (
	"sort"

	"github.com/katalvlaran/reshell/catalog"
	"github.com/katalvlaran/reshell/core"
	"github.com/katalvlaran/reshell/spatial"
)

// Cooccurrence infers patterns from local signature neighborhoods.
//
// For every shell of a partition it collects the multiset of signatures
// found within opts.Radius of the shell's centroid (the shell itself
// included), then tallies how often each distinct multiset occurs across
// the partition. Multisets seen at least opts.MinCount times (default 2)
// with at least two parts become candidate patterns, ranked by multiset
// size descending, then frequency descending, then canonical key — the
// returned slice carries that ranking.
//
// Inferred patterns are material-scoped with MaxSpread = 2·Radius, the
// diameter of the neighborhood that produced them.
//
// Known limitation: the result is sensitive to the radius — too small
// fragments real assemblies, too large melts spatially interleaved
// instances into one bogus multiset.
//
// Errors: ErrBadRadius when opts.Radius ≤ 0; core validation errors.
//
// Time: O(n²) worst case per partition (one radius query per shell).
func Cooccurrence(shells []core.Shell, opts Options) ([]catalog.Pattern, error) {
	if opts.Radius <= 0 {
		return nil, ErrBadRadius
	}
	st, err := core.NewStore(shells)
	if err != nil {
		return nil, err
	}
	minCount := opts.MinCount
	if minCount <= 0 {
		minCount = 2
	}

	var pats []catalog.Pattern
	for _, mat := range st.Materials() {
		part := st.Partition(mat)
		ix := spatial.NewIndex(part)

		type tally struct {
			sigs  []int64
			count int
		}
		hist := make(map[string]*tally)
		for _, sh := range part {
			neigh := ix.Within(sh.Centroid, opts.Radius)
			sigs := make([]int64, len(neigh))
			for i, n := range neigh {
				sigs[i] = n.Signature()
			}
			sort.Slice(sigs, func(a, b int) bool { return sigs[a] < sigs[b] })
			key := catalog.Pattern{Signatures: sigs}.Key()
			if t, ok := hist[key]; ok {
				t.count++
			} else {
				hist[key] = &tally{sigs: sigs, count: 1}
			}
		}

		keys := make([]string, 0, len(hist))
		for key, t := range hist {
			if t.count >= minCount && len(t.sigs) >= 2 {
				keys = append(keys, key)
			}
		}
		sort.Slice(keys, func(a, b int) bool {
			ta, tb := hist[keys[a]], hist[keys[b]]
			if len(ta.sigs) != len(tb.sigs) {
				return len(ta.sigs) > len(tb.sigs)
			}
			if ta.count != tb.count {
				return ta.count > tb.count
			}
			return keys[a] < keys[b]
		})
		for _, key := range keys {
			pats = append(pats, catalog.Pattern{
				Signatures: hist[key].sigs,
				MaxSpread:  2 * opts.Radius,
				Material:   mat,
			})
		}
	}
	return pats, nil
}
