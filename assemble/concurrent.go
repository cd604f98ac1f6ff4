package assemble

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/reshell/catalog"
	"github.com/katalvlaran/reshell/core"
)

// Concurrent is Assemble with material partitions processed in parallel.
//
// Partitions share no mutable state — each one owns its own spatial index
// and unassigned set — so running them on an errgroup is safe, and each
// partition's result lands in its own slot before a deterministic merge
// in ascending material order. Output is identical to Assemble; the
// matching inside one partition stays single-threaded on purpose (its
// anchor-consumption order is the determinism guarantee).
//
// Worth it only when the scene carries several sizable material
// partitions; for one partition it is Assemble plus goroutine overhead.
func Concurrent(shells []core.Shell, cat *catalog.Catalog, opts Options) ([]Assembly, error) {
	st, err := core.NewStore(shells)
	if err != nil {
		return nil, err
	}
	cat, err = resolveCatalog(shells, cat, opts)
	if err != nil {
		return nil, err
	}

	mats := st.Materials()
	parts := make([][]Assembly, len(mats))
	var g errgroup.Group
	for i, mat := range mats {
		i, mat := i, mat
		g.Go(func() error {
			parts[i] = matchPartition(st.Partition(mat), mat, cat)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	var out []Assembly
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}
