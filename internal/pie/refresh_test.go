package pie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tshono/ChromePie/internal/prefs"
	"github.com/tshono/ChromePie/internal/resources"
)

func buildOne(t *testing.T, fb *fakeBrowser, ids ...string) *Control {
	t.Helper()
	values := map[string]interface{}{"screen_slice_1": true}
	for i, id := range ids {
		values[prefs.ItemKey(1, i+1)] = id
	}
	c := New(staticSource(values), resources.Default(), fb)
	require.NoError(t, c.Populate())
	return c
}

func find(c *Control, id string) *Item {
	var found *Item
	c.Menu().Walk(func(item *Item) {
		if found == nil && item.ID == id {
			found = item
		}
	})
	return found
}

func TestRefreshBackDisabledKeepsIconAndID(t *testing.T) {
	fb := newFakeBrowser()
	fb.canBack = false
	c := buildOne(t, fb, "back")
	back := find(c, "back")
	icon := back.DisplayIcon()

	assert.True(t, c.OnOpen())
	assert.False(t, back.Enabled)
	assert.Equal(t, "back", back.ID)
	assert.Equal(t, icon, back.DisplayIcon())
}

func TestRefreshNavigationAndCapabilities(t *testing.T) {
	fb := newFakeBrowser()
	fb.canForward = false
	fb.finding = false
	fb.printing = false
	c := buildOne(t, fb, "forward", "find_in_page", "print")
	c.OnOpen()
	assert.False(t, find(c, "forward").Enabled)
	assert.False(t, find(c, "find_in_page").Enabled)
	assert.False(t, find(c, "print").Enabled)

	fb.canForward, fb.finding, fb.printing = true, true, true
	c.OnOpen()
	assert.True(t, find(c, "forward").Enabled)
	assert.True(t, find(c, "find_in_page").Enabled)
	assert.True(t, find(c, "print").Enabled)
}

func TestRefreshIconSwaps(t *testing.T) {
	fb := newFakeBrowser()
	c := buildOne(t, fb, "desktop_site", "refresh", "fullscreen", "add_bookmark")

	c.OnOpen()
	assert.Equal(t, resources.IconDesktop, find(c, "desktop_site").DisplayIcon())
	assert.Equal(t, resources.IconRefresh, find(c, "refresh").DisplayIcon())
	assert.Equal(t, resources.IconEnterFullscreen, find(c, "fullscreen").DisplayIcon())
	assert.Equal(t, resources.IconAddBookmark, find(c, "add_bookmark").DisplayIcon())

	fb.desktop, fb.loading, fb.fullscreen, fb.bookmarked = true, true, true, true
	c.OnOpen()
	assert.Equal(t, resources.IconMobile, find(c, "desktop_site").DisplayIcon())
	assert.Equal(t, resources.IconCancel, find(c, "refresh").DisplayIcon())
	assert.Equal(t, resources.IconExitFullscreen, find(c, "fullscreen").DisplayIcon())
	assert.Equal(t, resources.IconRemoveBookmark, find(c, "add_bookmark").DisplayIcon())
}

func TestRefreshBookmarkEnablement(t *testing.T) {
	fb := newFakeBrowser()
	fb.editBookmarks = false
	c := buildOne(t, fb, "add_bookmark")
	c.OnOpen()
	assert.False(t, find(c, "add_bookmark").Enabled)
}

func TestRefreshTabCount(t *testing.T) {
	fb := newFakeBrowser()
	c := buildOne(t, fb, "show_tabs")
	fb.tabs = 12
	c.OnOpen()
	assert.Equal(t, "12", find(c, "show_tabs").DisplayText())
}

func TestRefreshIncognitoAndInternalURL(t *testing.T) {
	fb := newFakeBrowser()
	c := buildOne(t, fb, "add_to_home", "recent_tabs", "most_visited", "share")

	c.OnOpen()
	for _, id := range []string{"add_to_home", "recent_tabs", "most_visited", "share"} {
		assert.Truef(t, find(c, id).Enabled, "%s enabled on a normal page", id)
	}

	fb.incognito = true
	c.OnOpen()
	assert.False(t, find(c, "add_to_home").Enabled)
	assert.False(t, find(c, "recent_tabs").Enabled)
	assert.False(t, find(c, "most_visited").Enabled)
	assert.True(t, find(c, "share").Enabled)

	fb.incognito = false
	fb.url = "chrome-native://newtab/"
	c.OnOpen()
	assert.False(t, find(c, "add_to_home").Enabled)
	assert.False(t, find(c, "share").Enabled)
	assert.True(t, find(c, "most_visited").Enabled)

	fb.url = "https://example.com/"
	fb.sync = false
	c.OnOpen()
	assert.False(t, find(c, "recent_tabs").Enabled, "sync gate applies before incognito gate")
	assert.True(t, find(c, "add_to_home").Enabled)
}

func TestRefreshToleratesMissingChildView(t *testing.T) {
	fb := newFakeBrowser()
	c := buildOne(t, fb, "show_tabs", "back")
	tabs := find(c, "show_tabs")
	tabs.View.children = tabs.View.children[:1]
	fb.canBack = false

	require.NotPanics(t, func() { c.OnOpen() })
	assert.Equal(t, "", tabs.DisplayText())
	assert.False(t, find(c, "back").Enabled, "other items still refresh")
}

func TestRefreshSkipsWrongViewKind(t *testing.T) {
	fb := newFakeBrowser()
	c := buildOne(t, fb, "refresh")
	item := find(c, "refresh")
	item.View = newGroupView(item.View.Tag, newImageView("x", nil))
	require.NotPanics(t, func() { c.OnOpen() })
}

func TestRefreshDoesNotRebuild(t *testing.T) {
	fb := newFakeBrowser()
	c := buildOne(t, fb, "back", "forward")
	before := shape(c.Menu())
	keys := c.ActionKeys()
	c.OnOpen()
	assert.Equal(t, before, shape(c.Menu()))
	assert.Equal(t, keys, c.ActionKeys())
}
