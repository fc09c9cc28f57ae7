package pie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tshono/ChromePie/internal/browser"
	"github.com/tshono/ChromePie/internal/resources"
)

func spyControl(t *testing.T, values map[string]interface{}) (*Control, map[string]int, *spyMain, *fakeBrowser) {
	t.Helper()
	counts := map[string]int{}
	factories := map[string]Factory{}
	for id := range DedicatedActions() {
		id := id
		factories[id] = func() Action { return spyAction{id: id, count: &counts} }
	}
	main := &spyMain{}
	fb := newFakeBrowser()
	c := New(staticSource(values), resources.Default(), fb, WithFactories(factories), WithMain(main))
	require.NoError(t, c.Populate())
	return c, counts, main, fb
}

func TestTapDedicatedNeverFallsBack(t *testing.T) {
	c, counts, main, _ := spyControl(t, map[string]interface{}{
		"screen_slice_1": true,
		"slice_1_item_1": "back",
	})
	tag := c.Menu().Items()[0].Tag()
	b := c.Tap(tag)
	assert.Equal(t, BindingDedicated, b.Kind)
	assert.Equal(t, 1, counts["back"])
	assert.Empty(t, main.commands)
}

func TestTapDedicatedWinsEvenWithActionString(t *testing.T) {
	c, counts, main, _ := spyControl(t, map[string]interface{}{
		"screen_slice_1": true,
		"slice_1_item_1": "back",
	})
	b := c.Tap(&Tag{ID: "back", Action: "open_history"})
	assert.Equal(t, BindingDedicated, b.Kind)
	assert.Equal(t, 1, counts["back"])
	assert.Empty(t, main.commands)
}

func TestTapGenericInvokesFallbackOnce(t *testing.T) {
	c, counts, main, _ := spyControl(t, map[string]interface{}{
		"screen_slice_1": true,
		"slice_1_item_1": "history",
	})
	b := c.Tap(c.Menu().Items()[0].Tag())
	assert.Equal(t, BindingMain, b.Kind)
	assert.Equal(t, []string{"open_history"}, main.commands)
	assert.Empty(t, counts)
}

func TestTapFillerIsNoOp(t *testing.T) {
	c, counts, main, _ := spyControl(t, map[string]interface{}{
		"screen_slice_1": true,
		"slice_1_item_1": "back",
	})
	filler := c.Menu().Items()[0].Items()[0]
	require.True(t, filler.Filler)
	b := c.Tap(filler.Tag())
	assert.Equal(t, BindingNone, b.Kind)
	assert.Empty(t, counts)
	assert.Empty(t, main.commands)
}

func TestTapWithoutHandlerOrActionIsNoOp(t *testing.T) {
	c, counts, main, _ := spyControl(t, map[string]interface{}{})
	b := c.Tap(&Tag{ID: "warp"})
	assert.Equal(t, BindingNone, b.Kind)
	assert.Empty(t, counts)
	assert.Empty(t, main.commands)
}

func TestTapNeverRetriesInstantiation(t *testing.T) {
	calls := 0
	factories := map[string]Factory{}
	c := New(staticSource(map[string]interface{}{
		"screen_slice_1": true,
		"slice_1_item_1": "forward",
	}), resources.Default(), newFakeBrowser(), WithFactories(factories))
	require.NoError(t, c.Populate())
	factories["forward"] = func() Action { calls++; return MainAction{} }

	b := c.Tap(c.Menu().Items()[0].Tag())
	assert.Equal(t, BindingNone, b.Kind)
	assert.Zero(t, calls)
}

func TestDefaultActionsDriveBrowser(t *testing.T) {
	fb := newFakeBrowser()
	c := New(staticSource(map[string]interface{}{
		"screen_slice_1": true,
		"slice_1_item_1": "refresh",
		"slice_1_item_2": "bookmarks",
		"slice_1_item_3": "share",
	}), resources.Default(), fb)
	require.NoError(t, c.Populate())

	top := c.Menu().Items()[0]
	c.Tap(top.Tag())
	fb.loading = true
	c.Tap(top.Tag())
	c.Tap(top.Items()[0].Tag())
	c.Tap(top.Items()[1].Tag())

	assert.Equal(t, []string{"Reload", "StopLoading", "ExecuteMenuCommand", "Share"}, fb.calls)
	assert.Equal(t, []browser.MenuCommand{browser.MenuBookmarks}, fb.menu)
}

func TestMainActionIgnoresUnknownCommand(t *testing.T) {
	fb := newFakeBrowser()
	MainAction{}.ExecuteMain(fb, "open_teleporter")
	assert.Empty(t, fb.calls)
	MainAction{}.ExecuteMain(fb, "open_settings")
	assert.Equal(t, []browser.MenuCommand{browser.MenuSettings}, fb.menu)
}

func TestEveryDedicatedActionExecutes(t *testing.T) {
	for id, factory := range DedicatedActions() {
		fb := newFakeBrowser()
		factory().Execute(fb)
		assert.Lenf(t, fb.calls, 1, "action %s should issue exactly one command", id)
	}
}

func TestCatalogDedicatedEntriesHaveFactories(t *testing.T) {
	factories := DedicatedActions()
	for _, e := range resources.Default().Entries() {
		if e.Action != "" || e.Value == noneID {
			continue
		}
		_, ok := factories[e.Value]
		assert.Truef(t, ok, "catalog value %s has no dedicated action", e.Value)
	}
	for _, e := range resources.Default().Entries() {
		if e.Action == "" {
			continue
		}
		_, ok := browser.ParseMenuCommand(e.Action)
		assert.Truef(t, ok, "catalog action %s is not a menu command", e.Action)
	}
}
