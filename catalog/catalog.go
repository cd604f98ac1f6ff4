package catalog

import (
	"fmt"
	"sort"
)

// New validates and canonicalizes the given patterns into a Catalog.
//
// Canonical form: each pattern's Signatures sorted ascending, and the
// catalog itself ordered by canonical key. Duplicate (multiset, material)
// pairs are rejected rather than merged — two spreads for one multiset is
// a configuration mistake the caller should hear about.
//
// Errors: ErrNoPatterns, ErrEmptyPattern, ErrBadSpread, ErrBadSignature,
// ErrDuplicatePattern (each wrapped with the offending pattern's key).
func New(patterns []Pattern) (*Catalog, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	canon := make([]Pattern, len(patterns))
	seen := make(map[string]struct{}, len(patterns))
	for i, p := range patterns {
		if p.Size() == 0 {
			return nil, fmt.Errorf("catalog: pattern %d: %w", i, ErrEmptyPattern)
		}
		if p.MaxSpread <= 0 {
			return nil, fmt.Errorf("catalog: pattern %q: %w", p.Key(), ErrBadSpread)
		}
		sigs := make([]int64, len(p.Signatures))
		copy(sigs, p.Signatures)
		sort.Slice(sigs, func(a, b int) bool { return sigs[a] < sigs[b] })
		if sigs[0] <= 0 {
			return nil, fmt.Errorf("catalog: pattern %q: %w", p.Key(), ErrBadSignature)
		}
		p.Signatures = sigs
		key := p.Key()
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("catalog: pattern %q: %w", key, ErrDuplicatePattern)
		}
		seen[key] = struct{}{}
		canon[i] = p
	}
	sort.Slice(canon, func(a, b int) bool { return canon[a].Key() < canon[b].Key() })
	return &Catalog{patterns: canon}, nil
}

// Satisfiable returns every catalog pattern that can be filled at least
// once from the given material partition: the pattern's material
// restriction (if any) matches, and for every required signature the
// partition holds at least the required count. Patterns that cannot be
// satisfied even once are dropped for this partition — this prunes most of
// the combinatorial search immediately.
//
// Time: O(patterns · distinct signatures per pattern).
func (c *Catalog) Satisfiable(material string, counts map[int64]int) []Pattern {
	var out []Pattern
	for _, p := range c.patterns {
		if p.Material != "" && p.Material != material {
			continue
		}
		if fillable(p, counts) {
			out = append(out, p)
		}
	}
	return out
}

// fillable reports whether every required signature count is available.
func fillable(p Pattern, counts map[int64]int) bool {
	for sig, need := range p.Counts() {
		if counts[sig] < need {
			return false
		}
	}
	return true
}

// UniqueSignatures returns the distinct signatures of p that appear in no
// other pattern of the candidate set. Patterns with more unique signatures
// can anchor their instances unambiguously and are prioritized.
func UniqueSignatures(p Pattern, candidates []Pattern) map[int64]struct{} {
	pKey := p.Key()
	unique := make(map[int64]struct{}, len(p.Signatures))
	for _, sig := range p.Signatures {
		unique[sig] = struct{}{}
	}
	for _, q := range candidates {
		if q.Key() == pKey {
			continue
		}
		for _, sig := range q.Signatures {
			delete(unique, sig)
		}
	}
	return unique
}

// PriorityOrder returns the candidate patterns in deterministic processing
// order: descending count of unique signatures, then descending pattern
// size, then canonical key ascending. Specific patterns claim their shells
// before generic or ambiguous ones do.
//
// The input slice is not modified.
func PriorityOrder(candidates []Pattern) []Pattern {
	out := make([]Pattern, len(candidates))
	copy(out, candidates)
	uniq := make(map[string]int, len(out))
	for _, p := range out {
		uniq[p.Key()] = len(UniqueSignatures(p, candidates))
	}
	sort.Slice(out, func(a, b int) bool {
		pa, pb := out[a], out[b]
		ka, kb := pa.Key(), pb.Key()
		if uniq[ka] != uniq[kb] {
			return uniq[ka] > uniq[kb]
		}
		if pa.Size() != pb.Size() {
			return pa.Size() > pb.Size()
		}
		return ka < kb
	})
	return out
}
