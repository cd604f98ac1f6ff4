package discover

import (
	"sort"

	"goki.dev/mat32/v2"

	"github.com/katalvlaran/reshell/catalog"
	"github.com/katalvlaran/reshell/core"
)

// GlobalRatio infers at most one pattern per material partition from the
// GCD of its signature counts.
//
// For each partition: tally how many shells carry each signature, take
// the greatest common divisor of all tallies, and treat it as the
// instance count — the inferred multiset repeats each signature
// count/GCD times. A partition contributes nothing when GCD < 2 (a shared
// per-instance divisor must actually repeat) or when the inferred
// multiset has fewer than two parts (a one-part "pattern" says nothing a
// singleton would not).
//
// Inferred patterns are material-scoped and take opts.MaxSpread
// (non-positive → +Inf). The result may be empty; that is a valid
// discovery outcome, not an error.
//
// Time: O(n) counting plus O(s log s) per partition, s = distinct
// signatures.
func GlobalRatio(shells []core.Shell, opts Options) ([]catalog.Pattern, error) {
	st, err := core.NewStore(shells)
	if err != nil {
		return nil, err
	}
	spread := opts.MaxSpread
	if spread <= 0 {
		spread = mat32.Infinity
	}

	var pats []catalog.Pattern
	for _, mat := range st.Materials() {
		counts := st.SignatureCounts(mat)

		g := 0
		for _, n := range counts {
			g = gcd(g, n)
		}
		if g < 2 {
			continue
		}

		sigs := make([]int64, 0, len(counts))
		for sig := range counts {
			sigs = append(sigs, sig)
		}
		sort.Slice(sigs, func(a, b int) bool { return sigs[a] < sigs[b] })

		multiset := make([]int64, 0)
		for _, sig := range sigs {
			for k := 0; k < counts[sig]/g; k++ {
				multiset = append(multiset, sig)
			}
		}
		if len(multiset) < 2 {
			continue
		}
		pats = append(pats, catalog.Pattern{
			Signatures: multiset,
			MaxSpread:  spread,
			Material:   mat,
		})
	}
	return pats, nil
}

// gcd returns the greatest common divisor; gcd(0, n) == n.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
