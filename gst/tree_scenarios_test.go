package gst_test

import (
	"testing"

	"github.com/forestrie/go-gst/gst"
	"github.com/forestrie/go-gst/gsttesting"
	"github.com/stretchr/testify/require"
)

// TestSeedScenarios runs every seed scenario: substring completeness
// (every substring of every Put key resolves back to that key's id,
// including after duplicate/offset re-insertion) and the named
// NotFound queries.
func TestSeedScenarios(t *testing.T) {
	for _, sc := range gsttesting.Scenarios() {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			tr := gst.NewTree()
			for _, p := range sc.Puts {
				require.NoError(t, tr.Put(p.Key, p.ID))
			}

			for _, p := range sc.Puts {
				for _, s := range gsttesting.Substrings(p.Key) {
					got := tr.Search(s)
					_, ok := got[p.ID]
					require.Truef(t, ok, "Search(%q) = %v, want to contain id %d (from key %q)", s, got, p.ID, p.Key)
				}
			}

			for _, q := range sc.NotFound {
				require.Empty(t, tr.Search(q), "Search(%q) should be empty", q)
			}
		})
	}
}

func TestEmptyQueryReturnsEveryInsertedID(t *testing.T) {
	tr := gst.NewTree()
	require.NoError(t, tr.Put("cacao", 0))
	require.NoError(t, tr.Put("banana", 1))

	got := tr.Search("")
	require.Equal(t, map[int]struct{}{0: {}, 1: {}}, got)
}

func TestSearchOnEmptyTree(t *testing.T) {
	tr := gst.NewTree()
	require.Empty(t, tr.Search("anything"))
	require.Empty(t, tr.Search(""))
}

func TestPutRejectsOutOfOrderID(t *testing.T) {
	tr := gst.NewTree()
	require.NoError(t, tr.Put("cacao", 5))
	err := tr.Put("banana", 4)
	require.ErrorIs(t, err, gst.ErrOutOfOrderID)

	// Tree is unchanged: banana must not be findable.
	require.Empty(t, tr.Search("banana"))
	require.NotEmpty(t, tr.Search("cacao"))
}

func TestPutRejectsEmptyKey(t *testing.T) {
	tr := gst.NewTree()
	err := tr.Put("", 0)
	require.ErrorIs(t, err, gst.ErrEmptyKey)
}

func TestPutAcceptsEqualID(t *testing.T) {
	tr := gst.NewTree()
	require.NoError(t, tr.Put("cacao", 1))
	require.NoError(t, tr.Put("banana", 1))
	require.Equal(t, map[int]struct{}{1: {}}, tr.Search("cacao"))
}

// TestCacacatoSharedPrefixChain exercises a key whose extension
// repeatedly shares a first character with an existing edge without
// being a prefix of it either way, forcing several suffix-link jumps
// before the tree settles.
func TestCacacatoSharedPrefixChain(t *testing.T) {
	tr := gst.NewTree()
	require.NoError(t, tr.Put("cacacato", 0))
	require.NoError(t, tr.Put("addressrestricted", 1))

	for _, s := range gsttesting.Substrings("cacacato") {
		got := tr.Search(s)
		_, ok := got[0]
		require.Truef(t, ok, "Search(%q) should contain id 0", s)
	}
	for _, s := range gsttesting.Substrings("addressrestricted") {
		got := tr.Search(s)
		_, ok := got[1]
		require.Truef(t, ok, "Search(%q) should contain id 1", s)
	}
}

func TestSearchTreeAndAggregator(t *testing.T) {
	a := gst.NewTree()
	require.NoError(t, a.Put("cacao", 0))
	b := gst.NewTree()
	require.NoError(t, b.Put("banana", 1))

	agg := gst.NewAggregator(a, b)
	require.Equal(t, map[int]struct{}{0: {}}, agg.Search("cac"))
	require.Equal(t, map[int]struct{}{1: {}}, agg.Search("ana"))
	require.Empty(t, agg.Search("zzz"))
}
