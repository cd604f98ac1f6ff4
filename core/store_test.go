package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goki.dev/mat32/v2"

	"github.com/katalvlaran/reshell/core"
)

// shell is a test helper building a Shell with the given id, signature,
// material and centroid coordinates.
func shell(id int, sig int64, mat string, x, y, z float32) core.Shell {
	return core.Shell{
		ID:          id,
		Fingerprint: core.Fingerprint{Signature: sig, Material: mat},
		Centroid:    mat32.NewVec3(x, y, z),
	}
}

// TestNewStore_EmptyInput verifies that an empty shell slice is rejected
// with ErrNoShells.
func TestNewStore_EmptyInput(t *testing.T) {
	_, err := core.NewStore(nil)
	assert.ErrorIs(t, err, core.ErrNoShells, "empty input must error ErrNoShells")
}

// TestNewStore_NoMaterial verifies that a shell with an empty material
// token rejects the whole run.
func TestNewStore_NoMaterial(t *testing.T) {
	_, err := core.NewStore([]core.Shell{shell(1, 4, "", 0, 0, 0)})
	assert.ErrorIs(t, err, core.ErrNoMaterial, "empty material must error ErrNoMaterial")
}

// TestNewStore_NoSignature verifies that a non-positive structural
// signature rejects the whole run.
func TestNewStore_NoSignature(t *testing.T) {
	_, err := core.NewStore([]core.Shell{shell(1, 0, "M1", 0, 0, 0)})
	assert.ErrorIs(t, err, core.ErrNoSignature, "zero signature must error ErrNoSignature")

	_, err = core.NewStore([]core.Shell{shell(1, -3, "M1", 0, 0, 0)})
	assert.ErrorIs(t, err, core.ErrNoSignature, "negative signature must error ErrNoSignature")
}

// TestNewStore_DuplicateID verifies that two shells sharing one id are
// rejected — the partition invariant is unverifiable otherwise.
func TestNewStore_DuplicateID(t *testing.T) {
	_, err := core.NewStore([]core.Shell{
		shell(7, 4, "M1", 0, 0, 0),
		shell(7, 5, "M1", 1, 0, 0),
	})
	assert.ErrorIs(t, err, core.ErrDuplicateID, "shared id must error ErrDuplicateID")
}

// TestStore_Lookups exercises the grouping lookups: by id, by
// fingerprint, and by material partition.
func TestStore_Lookups(t *testing.T) {
	shells := []core.Shell{
		shell(1, 4, "M1", 0, 0, 0),
		shell(2, 4, "M1", 1, 0, 0),
		shell(3, 8, "M1", 2, 0, 0),
		shell(4, 4, "M2", 3, 0, 0),
	}
	st, err := core.NewStore(shells)
	require.NoError(t, err, "valid input must not error")

	assert.Equal(t, 4, st.Len(), "all shells stored")

	got, ok := st.Shell(3)
	require.True(t, ok, "shell 3 exists")
	assert.Equal(t, int64(8), got.Signature(), "lookup returns the right shell")

	_, ok = st.Shell(99)
	assert.False(t, ok, "unknown id reports absence")

	fp := core.Fingerprint{Signature: 4, Material: "M1"}
	byFp := st.ByFingerprint(fp)
	require.Len(t, byFp, 2, "two shells share fingerprint (4, M1)")
	assert.Equal(t, []int{1, 2}, []int{byFp[0].ID, byFp[1].ID}, "input order preserved")

	assert.Equal(t, []string{"M1", "M2"}, st.Materials(), "materials sorted ascending")
	assert.Len(t, st.Partition("M1"), 3, "M1 partition holds three shells")
	assert.Len(t, st.Partition("M2"), 1, "M2 partition holds one shell")
	assert.Empty(t, st.Partition("M3"), "unknown material yields empty partition")
}

// TestStore_SignatureCounts verifies the per-partition availability table
// the catalog's satisfiability pruning runs against.
func TestStore_SignatureCounts(t *testing.T) {
	st, err := core.NewStore([]core.Shell{
		shell(1, 4, "M1", 0, 0, 0),
		shell(2, 4, "M1", 1, 0, 0),
		shell(3, 8, "M1", 2, 0, 0),
		shell(4, 4, "M2", 3, 0, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, map[int64]int{4: 2, 8: 1}, st.SignatureCounts("M1"))
	assert.Equal(t, map[int64]int{4: 1}, st.SignatureCounts("M2"))
	assert.Empty(t, st.SignatureCounts("M3"), "unknown material counts nothing")
}
