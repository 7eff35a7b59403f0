package reconcile

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Merge returns the union of sets as a new set. Nil sets are ignored and the
// inputs are left untouched.
func Merge(sets ...mapset.Set[string]) mapset.Set[string] {
	union := mapset.NewThreadUnsafeSet[string]()
	for _, s := range sets {
		if s == nil {
			continue
		}
		s.Each(func(path string) bool {
			union.Add(path)
			return false
		})
	}
	return union
}

// FromSlice builds a set from paths, collapsing duplicates.
func FromSlice(paths []string) mapset.Set[string] {
	return mapset.NewThreadUnsafeSet(paths...)
}
