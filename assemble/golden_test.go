package assemble_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reshell/assemble"
	"github.com/katalvlaran/reshell/catalog"
	"github.com/katalvlaran/reshell/core"
)

// TestAssemble_GoldenScene pins the full rendered output of a mixed
// scene — two pattern instances, a stray, and a second material — as a
// golden file. Any change to tie-breaking, ordering, or emission order
// shows up as a diff here before it shows up at a user.
//
// Refresh with: go test ./assemble -run TestAssemble_GoldenScene -update
func TestAssemble_GoldenScene(t *testing.T) {
	shells := []core.Shell{
		shell(1, 4, "M1", 0, 0, 0),
		shell(2, 4, "M1", 5, 0, 0),
		shell(3, 4, "M1", 0, 5, 0),
		shell(4, 4, "M1", 300, 0, 0),
		shell(5, 4, "M1", 305, 0, 0),
		shell(6, 4, "M1", 300, 5, 0),
		shell(7, 9, "M1", 500, 0, 0),
		shell(8, 3, "M2", 0, 0, 0),
	}
	cat, err := catalog.New([]catalog.Pattern{
		{Signatures: []int64{4, 4, 4}, MaxSpread: 50},
	})
	require.NoError(t, err)

	asms, err := assemble.Assemble(shells, cat, assemble.DefaultOptions())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "scene", []byte(assemble.Render(asms)))
}
