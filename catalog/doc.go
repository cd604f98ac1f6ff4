// Package catalog models the set of known part-multisets ("patterns") the
// matcher reconstructs assemblies from, plus the derived metadata that
// drives its processing order.
//
// What:
//
//   - Pattern — a multiset of structural signatures describing one instance
//     of a multi-part assembly, a spatial compactness threshold (MaxSpread,
//     same units as shell centroids), and an optional material restriction.
//   - Catalog — validated, canonicalized, duplicate-free pattern set.
//   - Satisfiable — drops every pattern that cannot be filled even once
//     from a partition's signature counts; this prunes most of the
//     combinatorial search before any spatial work starts.
//   - UniqueSignatures / PriorityOrder — signatures owned by exactly one
//     candidate pattern, and the deterministic processing order built from
//     them: more unique signatures first, larger patterns first, canonical
//     key as the final tie-break.
//
// Why the ordering policy:
//
//	A pattern with signatures no other candidate wants can anchor its
//	instances unambiguously, so it claims shells before generic patterns
//	get a chance to over-consume them; among equals, a larger match is
//	less likely to be a coincidental partial overlap. Specific patterns
//	run before generic ones.
//
// Complexity:
//
//   - New: O(Σ|p| log |p|) for canonicalization.
//   - Satisfiable: O(candidates · distinct signatures).
//   - PriorityOrder: O(c² · s) uniqueness scan + O(c log c) sort, with c
//     candidate patterns of at most s distinct signatures — c is small in
//     practice (a handful of part types per material).
//
// Errors:
//
//   - ErrNoPatterns       — New called with an empty pattern set.
//   - ErrEmptyPattern     — a pattern with no signatures.
//   - ErrBadSpread        — a pattern with a non-positive MaxSpread.
//   - ErrBadSignature     — a pattern containing a non-positive signature.
//   - ErrDuplicatePattern — two patterns with identical multiset, material.
package catalog
