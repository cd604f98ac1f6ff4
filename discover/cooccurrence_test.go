package discover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reshell/core"
	"github.com/katalvlaran/reshell/discover"
)

// TestCooccurrence_BadRadius verifies the radius requirement.
func TestCooccurrence_BadRadius(t *testing.T) {
	shells := []core.Shell{shell(1, 7, "M1", 0, 0, 0)}

	_, err := discover.Cooccurrence(shells, discover.Options{})
	assert.ErrorIs(t, err, discover.ErrBadRadius)

	_, err = discover.Cooccurrence(shells, discover.Options{Radius: -1})
	assert.ErrorIs(t, err, discover.ErrBadRadius)
}

// TestCooccurrence_TwoInstances verifies the basic histogram: two
// well-separated instances of one multiset produce exactly that pattern,
// bounded by the neighborhood diameter.
func TestCooccurrence_TwoInstances(t *testing.T) {
	shells := []core.Shell{
		shell(1, 7, "M1", 0, 0, 0),
		shell(2, 9, "M1", 2, 0, 0),
		shell(3, 3, "M1", 4, 0, 0),
		shell(4, 7, "M1", 200, 0, 0),
		shell(5, 9, "M1", 202, 0, 0),
		shell(6, 3, "M1", 204, 0, 0),
	}

	pats, err := discover.Cooccurrence(shells, discover.Options{Radius: 10})
	require.NoError(t, err)
	require.Len(t, pats, 1)
	assert.Equal(t, []int64{3, 7, 9}, pats[0].Signatures)
	assert.Equal(t, float32(20), pats[0].MaxSpread, "spread bound is the neighborhood diameter")
	assert.Equal(t, "M1", pats[0].Material)
}

// TestCooccurrence_UnevenCounts verifies the strategy's selling point
// over ratio inference: three instances next to one stray shell still
// yield the instance multiset (the stray's lone neighborhood multiset
// occurs once and is discarded).
func TestCooccurrence_UnevenCounts(t *testing.T) {
	shells := []core.Shell{
		shell(1, 7, "M1", 0, 0, 0),
		shell(2, 9, "M1", 2, 0, 0),
		shell(3, 7, "M1", 200, 0, 0),
		shell(4, 9, "M1", 202, 0, 0),
		shell(5, 7, "M1", 400, 0, 0),
		shell(6, 9, "M1", 402, 0, 0),
		shell(7, 55, "M1", 600, 0, 0), // stray; breaks any global GCD over {7,9,55}
	}

	pats, err := discover.Cooccurrence(shells, discover.Options{Radius: 10})
	require.NoError(t, err)
	require.Len(t, pats, 1, "the stray's singleton neighborhood is not a pattern")
	assert.Equal(t, []int64{7, 9}, pats[0].Signatures)
}

// TestCooccurrence_Ranking verifies candidate ordering: larger multisets
// first, then higher frequency.
func TestCooccurrence_Ranking(t *testing.T) {
	var shells []core.Shell
	id := 1
	// three instances of the pair (7,9)
	for i := 0; i < 3; i++ {
		x := float32(i) * 200
		shells = append(shells, shell(id, 7, "M1", x, 0, 0), shell(id+1, 9, "M1", x+2, 0, 0))
		id += 2
	}
	// two instances of the triple (3,7,9)
	for i := 0; i < 2; i++ {
		x := 1000 + float32(i)*200
		shells = append(shells,
			shell(id, 3, "M1", x, 0, 0),
			shell(id+1, 7, "M1", x+2, 0, 0),
			shell(id+2, 9, "M1", x+4, 0, 0),
		)
		id += 3
	}

	pats, err := discover.Cooccurrence(shells, discover.Options{Radius: 10})
	require.NoError(t, err)
	require.Len(t, pats, 2)
	assert.Equal(t, []int64{3, 7, 9}, pats[0].Signatures, "larger multiset ranks first")
	assert.Equal(t, []int64{7, 9}, pats[1].Signatures)
}

// TestCooccurrence_MinCount verifies the occurrence floor is tunable.
func TestCooccurrence_MinCount(t *testing.T) {
	shells := []core.Shell{
		shell(1, 7, "M1", 0, 0, 0),
		shell(2, 9, "M1", 2, 0, 0),
		shell(3, 7, "M1", 200, 0, 0),
		shell(4, 9, "M1", 202, 0, 0),
	}

	pats, err := discover.Cooccurrence(shells, discover.Options{Radius: 10, MinCount: 5})
	require.NoError(t, err)
	assert.Empty(t, pats, "four observations below a floor of five")
}

// TestCooccurrence_InterleavedLimitation documents the known radius
// sensitivity: a radius wide enough to span two interleaved instances
// melts them into one doubled multiset.
func TestCooccurrence_InterleavedLimitation(t *testing.T) {
	shells := []core.Shell{
		shell(1, 7, "M1", 0, 0, 0),
		shell(2, 9, "M1", 2, 0, 0),
		shell(3, 7, "M1", 4, 0, 0),
		shell(4, 9, "M1", 6, 0, 0),
	}

	pats, err := discover.Cooccurrence(shells, discover.Options{Radius: 10})
	require.NoError(t, err)
	require.Len(t, pats, 1)
	assert.Equal(t, []int64{7, 7, 9, 9}, pats[0].Signatures,
		"two interleaved pairs read as one quadruple at this radius")
}
