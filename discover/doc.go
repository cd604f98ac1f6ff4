// Package discover infers a pattern catalog from the shell collection
// itself, for scenes where no catalog of known part-multisets exists.
// Discovery and matching are decoupled: the discovered patterns feed the
// ordinary catalog → assemble pipeline unchanged.
//
// Two independent strategies, selectable by the caller:
//
//   - GlobalRatio — count occurrences of each signature across a whole
//     material partition; the greatest common divisor of all counts is the
//     inferred instance count, and dividing each count by it yields the
//     per-instance multiset. Exact but brittle: it only fires when every
//     signature's count shares one per-instance divisor ≥ 2, and it infers
//     at most one pattern per partition.
//
//   - Cooccurrence — for every shell, collect the multiset of signatures
//     found within a fixed neighborhood radius; tally how often each
//     distinct multiset occurs across the partition; retain multisets seen
//     at least MinCount times, ranked by multiset size then frequency.
//     Tolerates count ratios that do not divide evenly, but is sensitive
//     to the chosen radius and to spatially interleaved instances: a
//     radius that overlaps two instances melts them into one bogus
//     multiset. That sensitivity is inherent to the strategy, not a bug
//     to fix here.
//
// Discovered MaxSpread: ratio inference carries no spatial information,
// so GlobalRatio patterns take Options.MaxSpread (default +Inf);
// co-occurrence neighborhoods are radius-bounded, so their patterns take
// 2·Radius (the neighborhood diameter).
//
// Complexity:
//
//   - GlobalRatio:  O(n) counting + O(s) GCD per partition.
//   - Cooccurrence: O(n²) worst case (one radius query per shell).
//
// Errors:
//
//   - core validation errors — malformed shells reject discovery up front.
//   - ErrBadRadius — Cooccurrence with a non-positive radius.
package discover
