package assemble

import (
	"fmt"
	"sort"
	"strings"
)

// Render formats assemblies as stable, line-per-assembly text for logging
// and verification — matched assemblies show their pattern's canonical
// multiset, singletons their lone shell's signature. Member ids are
// printed ascending; combined with the matcher's deterministic output
// order, equal runs render to byte-equal text (what the golden tests pin).
//
// Example:
//
//	assembly 0: pattern 4,4,4 @M1 shells [1 2 3]
//	assembly 1: singleton @M1 shell 9 (sig 7)
func Render(asms []Assembly) string {
	var b strings.Builder
	for i, a := range asms {
		if a.Singleton() {
			sh := a.Shells[0]
			fmt.Fprintf(&b, "assembly %d: singleton @%s shell %d (sig %d)\n",
				i, sh.Material(), sh.ID, sh.Signature())
			continue
		}
		ids := make([]int, len(a.Shells))
		for j, sh := range a.Shells {
			ids[j] = sh.ID
		}
		sort.Ints(ids)
		fmt.Fprintf(&b, "assembly %d: pattern %s @%s shells %v\n",
			i, a.Pattern.Key(), a.Shells[0].Material(), ids)
	}
	return b.String()
}
