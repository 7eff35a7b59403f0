package reconcile

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	sitemap := mapset.NewSet("/a/", "/b/")
	redirects := FromSlice([]string{"/b/", "/c/", "/c/"})

	merged := Merge(sitemap, redirects, nil)

	assert.ElementsMatch(t, []string{"/a/", "/b/", "/c/"}, merged.ToSlice())
	assert.Equal(t, 2, sitemap.Cardinality(), "inputs must not be mutated")
	assert.Equal(t, 2, redirects.Cardinality())
}

func TestMerge_Empty(t *testing.T) {
	assert.Equal(t, 0, Merge().Cardinality())
	assert.Equal(t, 0, Merge(nil, mapset.NewSet[string]()).Cardinality())
}
