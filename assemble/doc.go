// Package assemble implements the reassembly matcher: it partitions an
// unordered collection of shells into the multi-part assemblies they
// originally belonged to, using a catalog of known patterns and spatial
// locality as tie-breakers.
//
// Algorithm (one run, per material partition):
//
//  1. Prune the catalog to patterns satisfiable from the partition's
//     signature counts, then order them by priority: more unique
//     signatures first, larger patterns first (catalog.PriorityOrder).
//  2. For each pattern, pick an anchor signature — unique to the pattern
//     if one exists, otherwise the scarcest among the still-unassigned —
//     and enumerate anchor shells in stable spatial order.
//  3. For each unconsumed anchor, fill every other required signature with
//     the nearest unassigned shells of exactly that signature. Shortage
//     abandons the anchor. Otherwise validate the cluster's spread (max
//     distance from mean centroid to any member) against the pattern's
//     MaxSpread: a violation abandons the anchor — nearby shells belong to
//     a different instance — while success marks every member assigned and
//     emits an Assembly.
//  4. After all patterns, every still-unassigned shell becomes its own
//     singleton Assembly (Pattern == nil). Not a failure path: scenes
//     legitimately contain standalone parts.
//
// Per-signature nearest-neighbor fill, rather than nearest-neighbor
// overall, is the load-bearing choice: instances of the same pattern are
// often closer to each other than the sub-parts of one instance are, so
// naive proximity clustering misassigns parts across instances.
//
// The run is a pure function (shells, catalog|discovery) → assemblies:
// no state persists between runs. It is synchronous and single-threaded
// so that anchor-consumption order stays deterministic; material
// partitions are mutually independent, and Concurrent runs them on an
// errgroup with output identical to Assemble.
//
// The matcher is greedy and deterministic, not globally optimal: in
// adversarial signature-collision layouts it can mis-assign a shell an
// exact combinatorial optimizer would place correctly. That trade-off —
// determinism and near-linear runtime over optimality — is deliberate.
//
// Complexity: O(n log n) per partition for index builds and anchor sorts,
// plus O(a · b log b) for anchor attempts over signature buckets; n is the
// partition size, a the anchor count, b the largest bucket.
//
// Errors:
//
//   - core validation errors  — malformed shells reject the run up front.
//   - ErrNoCatalog            — nil catalog and no discovery mode selected.
//   - ErrBadDiscovery         — unknown discovery mode.
//   - discover.ErrBadRadius   — co-occurrence discovery without a radius.
package assemble
