// Package core defines the input model of the reassembly engine: the
// Fingerprint and Shell value types, input validation, and the Store that
// groups shells by fingerprint and by material partition.
//
// What:
//
//   - Fingerprint — (structural signature, material) pair; two shells with
//     equal fingerprints are structurally interchangeable for matching.
//   - Shell — one disconnected unit of geometry, reduced to a fingerprint,
//     a world-space centroid, and an opaque Handle back to the caller's
//     scene object. Shells are read-only inputs; the engine never mutates
//     them and never dereferences Handle.
//   - Store — immutable once built; provides grouping-by-fingerprint and
//     grouping-by-material lookups plus an id→index map so the matcher's
//     hot loop never scans for a shell by id.
//
// Why:
//
//   - Material partitions are a hard architectural boundary: patterns and
//     spatial reasoning are evaluated strictly within one partition, which
//     both reflects the domain and bounds the search space per partition.
//   - Validation is the only aborting path of the whole engine: a shell
//     with no material or no signature is rejected here, before any
//     partitioning or assignment work happens.
//
// Complexity:
//
//   - NewStore: O(n) time and memory in the shell count.
//   - All lookups: O(1) amortized; partition listings O(k) in result size.
//
// Errors:
//
//   - ErrNoShells     — the input slice is empty.
//   - ErrNoMaterial   — a shell carries an empty material token.
//   - ErrNoSignature  — a shell carries a non-positive structural signature.
//   - ErrDuplicateID  — two shells share one id within a single run.
package core
