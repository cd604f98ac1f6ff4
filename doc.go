// Package reshell reconstructs multi-part sub-assemblies from a flat
// collection of disconnected geometric shells — the grouping lost when
// instanced parts are flattened into a single mesh on export.
//
// 🚀 What is reshell?
//
//	A deterministic, in-memory matching engine that partitions shells into
//	the assemblies they originally came from:
//		• core/     — Shell & Fingerprint types, input validation, the Shell Store
//		• spatial/  — nearest-neighbor queries over shell centroids
//		• catalog/  — known part-multisets ("patterns") with spread thresholds
//		• assemble/ — material partition → priority-ordered greedy anchor
//		  assignment → spread validation → singleton fallback
//		• discover/ — catalog inference when none is supplied (GCD ratio,
//		  local co-occurrence histograms)
//
// ✨ Why choose reshell?
//
//   - Deterministic – stable spatial tie-breaks; shuffled input, same output
//   - Honest about hard cases – interleaved instances of one pattern and
//     signature collisions across patterns are handled, not assumed away
//   - Pure matching core – geometry extraction, scene editing and file I/O
//     stay with the caller; shells carry an opaque Handle back to the mesh
//
// Typical flow:
//
//	shells := []core.Shell{ /* fingerprint + centroid per shell */ }
//	cat, _ := catalog.New([]catalog.Pattern{
//	    {Signatures: []int64{4, 4, 4}, MaxSpread: 50},
//	})
//	asms, err := assemble.Assemble(shells, cat, assemble.DefaultOptions())
//
// Every shell of the input ends up in exactly one output Assembly; shells
// matching no known pattern become one-shell singleton Assemblies — a scene
// legitimately contains standalone parts.
//
//	go get github.com/katalvlaran/reshell
package reshell
