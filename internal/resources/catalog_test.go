package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIconsResolve(t *testing.T) {
	table := Default()
	require.NotEmpty(t, table.Entries())
	for _, e := range table.Entries() {
		assert.Truef(t, HasGlyph(e.Icon), "entry %s has unknown icon %q", e.Value, e.Icon)
	}
}

func TestDefaultCatalogContainsNone(t *testing.T) {
	e, ok := Default().Lookup("none")
	require.True(t, ok)
	assert.Empty(t, e.Action)
}

func TestFromParallelResolvesByPosition(t *testing.T) {
	values := []string{"back", "forward", "bookmarks"}
	actions := []string{"", "", "open_bookmarks"}
	icons := []string{"ic_back", "ic_forward", "ic_bookmarks"}
	table, err := FromParallel(nil, actions, values, icons)
	require.NoError(t, err)
	for i, v := range values {
		e, ok := table.Lookup(v)
		require.True(t, ok)
		assert.Equal(t, actions[i], e.Action)
		assert.Equal(t, icons[i], e.Icon)
	}
}

func TestFromParallelRejectsMisalignedTables(t *testing.T) {
	_, err := FromParallel(nil, []string{""}, []string{"back", "forward"}, []string{"a", "b"})
	require.Error(t, err)
	_, err = FromParallel([]string{"Back"}, []string{"", ""}, []string{"back", "forward"}, []string{"a", "b"})
	require.Error(t, err)
}

func TestFirstMatchingIndexWins(t *testing.T) {
	table, err := FromParallel(nil, []string{"", "dup"}, []string{"back", "back"}, []string{"one", "two"})
	require.NoError(t, err)
	e, _ := table.Lookup("back")
	assert.Equal(t, "one", e.Icon)
	assert.Len(t, table.Values(), 1)
}

func TestLookupMissingValue(t *testing.T) {
	_, ok := Default().Lookup("teleport")
	assert.False(t, ok)
}

func TestSuggestFindsCloseValue(t *testing.T) {
	table := Default()
	assert.Equal(t, "bookmarks", table.Suggest("bookmarks"))
	assert.Equal(t, "forward", table.Suggest("forwrad"))
	assert.Empty(t, table.Suggest(""))
}

func TestGlyphFallsBack(t *testing.T) {
	assert.Equal(t, missingGlyph, Glyph("does-not-exist"))
	assert.NotEqual(t, missingGlyph, Glyph(IconRefresh))
}
