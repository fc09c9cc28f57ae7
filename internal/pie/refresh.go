package pie

import (
	"strconv"

	"github.com/tshono/ChromePie/internal/browser"
	"github.com/tshono/ChromePie/internal/logging/events"
	"github.com/tshono/ChromePie/internal/resources"
)

// OnOpen brings every built item in line with live browser state. It only
// touches enablement, icons and labels and always lets the menu open.
func (c *Control) OnOpen() bool {
	b := c.controller
	c.menu.Walk(func(item *Item) {
		if item.Filler || item.View == nil {
			return
		}
		refreshItem(b, item)
	})
	return true
}

func refreshItem(b browser.Querier, item *Item) {
	item.Enabled = true
	switch item.ID {
	case "forward":
		item.Enabled = b.CanGoForward()
	case "back":
		item.Enabled = b.CanGoBack()
	case "desktop_site":
		setIcon(item, pick(b.IsDesktopUserAgent(), resources.IconMobile, resources.IconDesktop))
	case "refresh":
		setIcon(item, pick(b.IsLoading(), resources.IconCancel, resources.IconRefresh))
	case "fullscreen":
		setIcon(item, pick(b.IsFullscreen(), resources.IconExitFullscreen, resources.IconEnterFullscreen))
	case "show_tabs":
		setText(item, strconv.Itoa(b.TabCount()))
	case "find_in_page":
		item.Enabled = b.TabSupportsFinding()
	case "print":
		item.Enabled = b.PrintingSupported()
	case "recent_tabs":
		item.Enabled = b.SyncSupported()
	case "add_bookmark":
		setIcon(item, pick(b.BookmarkExists(), resources.IconRemoveBookmark, resources.IconAddBookmark))
		item.Enabled = b.EditBookmarksSupported()
	}
	switch item.ID {
	case "add_to_home", "recent_tabs", "most_visited":
		item.Enabled = item.Enabled && !b.IsIncognito()
	}
	switch item.ID {
	case "add_to_home", "share":
		item.Enabled = item.Enabled && !browser.IsInternalURL(b.URL())
	}
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

// target returns the view that carries an item's icon or label. Composite
// views expose it as their second child.
func target(item *Item) (*View, bool) {
	v := item.View
	if v.Kind != ViewGroup {
		return v, true
	}
	return v.ChildAt(tabsCountChild)
}

func setIcon(item *Item, icon string) {
	v, ok := target(item)
	if !ok || v.Kind != ViewImage {
		events.Menu.RefreshSkip(item.ID, "no image view")
		return
	}
	v.Icon = icon
}

func setText(item *Item, text string) {
	v, ok := target(item)
	if !ok || v.Kind != ViewText {
		events.Menu.RefreshSkip(item.ID, "no text view")
		return
	}
	v.Text = text
}
