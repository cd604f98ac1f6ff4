// File: catalog/example_test.go
package catalog_test

import (
	"fmt"

	"github.com/katalvlaran/reshell/catalog"
)

////////////////////////////////////////////////////////////////////////////////
// Example: PriorityOrder
////////////////////////////////////////////////////////////////////////////////

// ExamplePriorityOrder shows the processing-order policy on a candidate
// set with colliding signatures.
// Scenario:
//
//   - (7,16) owns signature 7 outright — no other candidate wants it — so
//     it anchors unambiguously and goes first.
//   - The two remaining patterns share every signature; the larger one
//     wins the tie (a bigger match is less likely to be a coincidental
//     partial overlap).
func ExamplePriorityOrder() {
	cands := []catalog.Pattern{
		{Signatures: []int64{5, 5, 5, 5, 16, 24}, MaxSpread: 50},
		{Signatures: []int64{5, 5, 5, 5, 16, 16, 24, 24}, MaxSpread: 50},
		{Signatures: []int64{7, 16}, MaxSpread: 50},
	}

	for i, p := range catalog.PriorityOrder(cands) {
		fmt.Printf("%d: %s\n", i, p.Key())
	}

	// Output:
	// 0: 7,16
	// 1: 5,5,5,5,16,16,24,24
	// 2: 5,5,5,5,16,24
}
