// Package spatial provides nearest-neighbor queries over shell centroids
// within one material partition.
//
// What:
//
//   - Index — buckets a partition's shells by structural signature and
//     answers: the k nearest shells of exactly one signature to a point
//     (the matcher's per-signature fill), all shells within a radius (the
//     discovery co-occurrence neighborhood), and the anchor enumeration
//     order for a signature.
//   - Centroid and Spread — the cluster compactness metric: mean of member
//     centroids, and the maximum distance from that mean to any member.
//
// Why:
//
//   - Instances of the same pattern are frequently closer to each other
//     than the sub-parts of a single instance are to one another, so the
//     matcher never asks "what is nearby" — it asks "where is the nearest
//     shell of exactly the signature I still need". Restricting queries to
//     one signature bucket is what makes that cheap.
//   - Every query enumerates and tie-breaks deterministically: distance,
//     then centroid X, Y, Z, then shell id. Input ordering never leaks
//     into results.
//
// Complexity:
//
//   - NewIndex: O(n) time and memory.
//   - Nearest:  O(b log b) per query, b = size of the signature bucket.
//   - Within:   O(n) per query.
//
// A linear scan per query is deliberate: partitions hold tens to low
// thousands of shells and queries are bucket-bounded, so a k-d tree buys
// nothing but tie-break complexity here.
//
// Errors: none — out-of-range queries degrade to empty results.
package spatial
