package assemble

import (
	"sort"

	"github.com/katalvlaran/reshell/catalog"
	"github.com/katalvlaran/reshell/core"
	"github.com/katalvlaran/reshell/discover"
	"github.com/katalvlaran/reshell/spatial"
)

// Assemble partitions the input shells into assemblies.
//
// Contracts:
//   - shells must pass core validation (non-empty material, positive
//     signature, unique ids); a violation rejects the run before any
//     assignment work, wrapped around the core sentinel.
//   - cat may be nil only when opts.Discovery selects a discovery
//     strategy; otherwise ErrNoCatalog.
//   - Input ordering is insignificant: every enumeration inside the run
//     uses the stable spatial key, so a shuffled input yields the same
//     assemblies in the same output order.
//
// Output: matched assemblies in assignment order (material ascending,
// pattern priority, anchor order), then the singleton fallback per
// partition in stable spatial order. Every input shell appears in exactly
// one output assembly.
//
// Complexity: see the package documentation.
func Assemble(shells []core.Shell, cat *catalog.Catalog, opts Options) ([]Assembly, error) {
	st, err := core.NewStore(shells)
	if err != nil {
		return nil, err
	}
	cat, err = resolveCatalog(shells, cat, opts)
	if err != nil {
		return nil, err
	}

	var out []Assembly
	for _, mat := range st.Materials() {
		out = append(out, matchPartition(st.Partition(mat), mat, cat)...)
	}
	return out, nil
}

// resolveCatalog returns the catalog to match against: the supplied one,
// or a discovered one per opts.Discovery. A nil result (with nil error)
// means "no patterns" — matching degrades to singletons, which is the
// documented graceful path, not a failure.
func resolveCatalog(shells []core.Shell, cat *catalog.Catalog, opts Options) (*catalog.Catalog, error) {
	if cat != nil {
		return cat, nil
	}
	var (
		pats []catalog.Pattern
		err  error
	)
	switch opts.Discovery {
	case NoDiscovery:
		return nil, ErrNoCatalog
	case GlobalRatio:
		pats, err = discover.GlobalRatio(shells, discover.Options{MaxSpread: opts.RatioSpread})
	case Cooccurrence:
		pats, err = discover.Cooccurrence(shells, discover.Options{Radius: opts.Radius})
	default:
		return nil, ErrBadDiscovery
	}
	if err != nil {
		return nil, err
	}
	if len(pats) == 0 {
		return nil, nil
	}
	return catalog.New(pats)
}

// matchPartition runs the greedy anchor assignment over one material
// partition and returns its assemblies, singletons last.
func matchPartition(shells []core.Shell, material string, cat *catalog.Catalog) []Assembly {
	ix := spatial.NewIndex(shells)
	assigned := make(map[int]bool, len(shells))
	avail := make(map[int64]int) // unassigned shells per signature
	for _, sh := range shells {
		avail[sh.Signature()]++
	}

	var out []Assembly
	if cat != nil {
		counts := make(map[int64]int, len(avail))
		for sig, n := range avail {
			counts[sig] = n
		}
		ordered := catalog.PriorityOrder(cat.Satisfiable(material, counts))
		for i := range ordered {
			p := ordered[i]
			// Earlier patterns may have consumed what this one needs.
			if !fillableFrom(p, avail) {
				continue
			}
			anchorSig := pickAnchorSignature(p, catalog.UniqueSignatures(p, ordered), avail)
			for _, anchor := range ix.Anchors(anchorSig) {
				if assigned[anchor.ID] {
					continue
				}
				members, ok := gather(ix, anchor, p, assigned)
				if !ok {
					continue
				}
				mean := spatial.Centroid(members)
				if spatial.Spread(members, mean) > p.MaxSpread {
					// Too spread out: the nearby shells belong to a
					// different instance. The members stay unassigned.
					continue
				}
				for _, m := range members {
					assigned[m.ID] = true
					avail[m.Signature()]--
				}
				out = append(out, Assembly{Shells: members, Pattern: &p, Centroid: mean})
			}
		}
	}

	// Singleton fallback: every shell no pattern claimed becomes its own
	// assembly, in stable spatial order.
	rest := make([]core.Shell, 0, len(shells))
	for _, sh := range shells {
		if !assigned[sh.ID] {
			rest = append(rest, sh)
		}
	}
	sort.Slice(rest, func(a, b int) bool { return spatial.Less(rest[a], rest[b]) })
	for _, sh := range rest {
		out = append(out, Assembly{Shells: []core.Shell{sh}, Centroid: sh.Centroid})
	}
	return out
}

// fillableFrom reports whether the pattern can still be filled at least
// once from the current unassigned counts.
func fillableFrom(p catalog.Pattern, avail map[int64]int) bool {
	for sig, need := range p.Counts() {
		if avail[sig] < need {
			return false
		}
	}
	return true
}

// pickAnchorSignature chooses the signature anchor candidates are drawn
// from: a signature unique to this pattern if one exists, otherwise any of
// the pattern's signatures — in both cases preferring the scarcest (fewest
// unassigned shells, the most constraining start), ties broken by smaller
// signature value.
func pickAnchorSignature(p catalog.Pattern, unique map[int64]struct{}, avail map[int64]int) int64 {
	pool := unique
	if len(pool) == 0 {
		pool = make(map[int64]struct{}, len(p.Signatures))
		for _, sig := range p.Signatures {
			pool[sig] = struct{}{}
		}
	}
	var (
		best  int64
		first = true
	)
	for sig := range pool {
		if first || avail[sig] < avail[best] || (avail[sig] == avail[best] && sig < best) {
			best = sig
			first = false
		}
	}
	return best
}

// gather attempts to complete one pattern instance around the anchor:
// for every other required signature it takes the nearest unassigned
// shells of exactly that signature, in the required quantity. A shortage
// abandons the anchor (false); spread validation is the caller's job.
//
// Member order: anchor first, then signatures ascending, each by
// ascending distance from the anchor — deterministic by construction.
func gather(ix *spatial.Index, anchor core.Shell, p catalog.Pattern, assigned map[int]bool) ([]core.Shell, bool) {
	need := p.Counts()
	need[anchor.Signature()]--

	picked := map[int]bool{anchor.ID: true}
	members := make([]core.Shell, 0, p.Size())
	members = append(members, anchor)

	sigs := make([]int64, 0, len(need))
	for sig := range need {
		sigs = append(sigs, sig)
	}
	sort.Slice(sigs, func(a, b int) bool { return sigs[a] < sigs[b] })

	skip := func(id int) bool { return assigned[id] || picked[id] }
	for _, sig := range sigs {
		n := need[sig]
		if n == 0 {
			continue
		}
		near := ix.Nearest(anchor.Centroid, sig, n, skip)
		if len(near) < n {
			return nil, false
		}
		for _, sh := range near {
			picked[sh.ID] = true
			members = append(members, sh)
		}
	}
	return members, true
}
