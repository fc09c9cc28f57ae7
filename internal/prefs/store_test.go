package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSeedsDefaultLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	store, err := Open(path)
	require.NoError(t, err)

	snap, err := store.Reload()
	require.NoError(t, err)
	assert.True(t, snap.Bool(SliceKey(1), false))
	v, ok := snap.String(ItemKey(1, 1))
	require.True(t, ok)
	assert.Equal(t, "back", v)
	assert.False(t, snap.Bool(SliceKey(6), true))
}

func TestSnapshotIsImmutableAcrossWrites(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "prefs.yaml"))
	require.NoError(t, err)

	before, err := store.Reload()
	require.NoError(t, err)
	require.NoError(t, store.Set(ItemKey(1, 1), "refresh"))

	v, _ := before.String(ItemKey(1, 1))
	assert.Equal(t, "back", v, "snapshot must not observe later writes")

	after, err := store.Reload()
	require.NoError(t, err)
	v, _ = after.String(ItemKey(1, 1))
	assert.Equal(t, "refresh", v)
}

func TestSetNilRemovesKey(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "prefs.yaml"))
	require.NoError(t, err)
	require.NoError(t, store.Set(ItemKey(1, 2), nil))
	snap, err := store.Reload()
	require.NoError(t, err)
	assert.False(t, snap.Has(ItemKey(1, 2)))
}

func TestTOMLStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("screen_slice_1 = true\nslice_1_item_1 = \"back\"\n"), 0o644))
	store, err := Open(path)
	require.NoError(t, err)
	snap, err := store.Reload()
	require.NoError(t, err)
	assert.True(t, snap.Bool(SliceKey(1), false))
	assert.Equal(t, 2, snap.Len())

	require.NoError(t, store.Set(KeyTriggerSide, "left"))
	snap, err = store.Reload()
	require.NoError(t, err)
	assert.Equal(t, SideLeft, snap.TriggerSide())
}

func TestReloadReportsDecodeErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screen_slice_1: [unterminated"), 0o644))
	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.Reload()
	assert.Error(t, err)
}

func TestSnapshotBoolParsesStrings(t *testing.T) {
	snap := NewSnapshot(map[string]interface{}{
		"a": "true",
		"b": "nope",
		"c": false,
	})
	assert.True(t, snap.Bool("a", false))
	assert.True(t, snap.Bool("b", true))
	assert.False(t, snap.Bool("c", true))
	assert.True(t, snap.Bool("missing", true))
}

func TestTriggerSideDefaults(t *testing.T) {
	assert.Equal(t, SideBoth, NewSnapshot(nil).TriggerSide())
	assert.Equal(t, SideBoth, NewSnapshot(map[string]interface{}{KeyTriggerSide: "top"}).TriggerSide())
	assert.Equal(t, SideRight, NewSnapshot(map[string]interface{}{KeyTriggerSide: "Right"}).TriggerSide())
}

func TestSideAllows(t *testing.T) {
	assert.True(t, SideBoth.Allows(SideLeft))
	assert.True(t, SideLeft.Allows(SideLeft))
	assert.False(t, SideLeft.Allows(SideRight))
}

func TestKnownKeys(t *testing.T) {
	for key := range DefaultLayout() {
		assert.Truef(t, Known(key), "default key %s", key)
	}
	assert.True(t, Known(ItemKey(6, 6)))
	assert.False(t, Known("screen_slice_7"))
	assert.False(t, Known("slice_1_item_0"))
	assert.False(t, Known("trigger_sid"))
}
