package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tshono/ChromePie/internal/ui"
)

func TestBuildSeedsPreferencesAndOpens(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		PrefsPath:     filepath.Join(dir, "prefs.yaml"),
		BookmarksPath: filepath.Join(dir, "bookmarks.db"),
		StartURL:      "https://example.com/",
		Width:         60,
		Height:        20,
	}
	model, cleanup, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	_, err = os.Stat(cfg.PrefsPath)
	require.NoError(t, err, "default layout should be written")
	_, err = os.Stat(cfg.BookmarksPath)
	require.NoError(t, err, "bookmark database should be created")

	h := ui.NewHarness(model)
	h.Key("space")
	view := h.View()
	assert.True(t, strings.Contains(view, "Back"), view)
	assert.True(t, strings.Contains(view, "https://example.com/"), view)
}

func TestBuildWithWatcher(t *testing.T) {
	dir := t.TempDir()
	model, cleanup, err := Build(context.Background(), Config{
		PrefsPath:     filepath.Join(dir, "prefs.toml"),
		BookmarksPath: ":memory:",
		Watch:         true,
	})
	require.NoError(t, err)
	require.NotNil(t, model)
	assert.NotNil(t, model.Init(), "a watching model waits for backend events")
	cleanup()
}

func TestBuildFailsOnUnreadablePreferences(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screen_slice_1: [unterminated"), 0o644))

	model, cleanup, err := Build(context.Background(), Config{PrefsPath: path, BookmarksPath: ":memory:"})
	require.NoError(t, err, "a broken file leaves an empty pie rather than failing startup")
	defer cleanup()
	h := ui.NewHarness(model)
	h.Key("space")
	assert.Contains(t, h.View(), "no slices enabled")
}
