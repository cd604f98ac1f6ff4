package core

import (
	"fmt"
	"sort"
)

// Store holds the flat input shell list and its derived groupings.
// It is immutable once built; all mutation during matching happens in the
// matcher's own "unassigned" bookkeeping, never here.
type Store struct {
	shells []Shell
	byID   map[int]int           // shell id -> index into shells
	byFp   map[Fingerprint][]int // fingerprint -> indices, input order
	byMat  map[string][]int      // material -> indices, input order
}

// NewStore validates the input and builds the grouping lookups.
//
// Validation is the engine's fail-fast stage: an empty input, an empty
// material, a non-positive signature, or a duplicated id rejects the whole
// run before any partitioning begins (all later per-candidate failures are
// ordinary control flow, not errors).
//
// Time: O(n). Memory: O(n).
func NewStore(shells []Shell) (*Store, error) {
	if len(shells) == 0 {
		return nil, ErrNoShells
	}
	st := &Store{
		shells: shells,
		byID:   make(map[int]int, len(shells)),
		byFp:   make(map[Fingerprint][]int),
		byMat:  make(map[string][]int),
	}
	for i, sh := range shells {
		if sh.Fingerprint.Material == "" {
			return nil, fmt.Errorf("core: shell %d: %w", sh.ID, ErrNoMaterial)
		}
		if sh.Fingerprint.Signature <= 0 {
			return nil, fmt.Errorf("core: shell %d: %w", sh.ID, ErrNoSignature)
		}
		if _, dup := st.byID[sh.ID]; dup {
			return nil, fmt.Errorf("core: shell %d: %w", sh.ID, ErrDuplicateID)
		}
		st.byID[sh.ID] = i
		st.byFp[sh.Fingerprint] = append(st.byFp[sh.Fingerprint], i)
		st.byMat[sh.Fingerprint.Material] = append(st.byMat[sh.Fingerprint.Material], i)
	}
	return st, nil
}

// Len returns the number of stored shells.
func (s *Store) Len() int { return len(s.shells) }

// Shell returns the shell with the given id and whether it exists.
func (s *Store) Shell(id int) (Shell, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Shell{}, false
	}
	return s.shells[i], true
}

// ByFingerprint returns all shells with the given fingerprint, in input
// order. The returned slice is freshly allocated.
func (s *Store) ByFingerprint(fp Fingerprint) []Shell {
	return s.collect(s.byFp[fp])
}

// Materials returns every distinct material token, sorted ascending.
// Sorted order is what makes per-partition processing deterministic.
func (s *Store) Materials() []string {
	mats := make([]string, 0, len(s.byMat))
	for m := range s.byMat {
		mats = append(mats, m)
	}
	sort.Strings(mats)
	return mats
}

// Partition returns all shells of one material, in input order.
// The returned slice is freshly allocated.
func (s *Store) Partition(material string) []Shell {
	return s.collect(s.byMat[material])
}

// SignatureCounts tallies how many shells of each structural signature the
// given material partition contains. This is the availability table the
// catalog's satisfiability pruning runs against.
func (s *Store) SignatureCounts(material string) map[int64]int {
	counts := make(map[int64]int)
	for _, i := range s.byMat[material] {
		counts[s.shells[i].Fingerprint.Signature]++
	}
	return counts
}

// collect materializes an index list into a shell slice.
func (s *Store) collect(idx []int) []Shell {
	if len(idx) == 0 {
		return nil
	}
	out := make([]Shell, len(idx))
	for k, i := range idx {
		out[k] = s.shells[i]
	}
	return out
}
