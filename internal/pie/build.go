package pie

import (
	"strconv"

	"github.com/tshono/ChromePie/internal/logging/events"
	"github.com/tshono/ChromePie/internal/prefs"
	"github.com/tshono/ChromePie/internal/resources"
)

const (
	levelTop = 1
	// Nested items share the parent's level; the pie has one child ring.
	levelNested = 1
)

// Populate discards the current tree and action map and rebuilds both from a
// freshly reloaded preference snapshot. A failed reload leaves an empty menu
// and is returned to the caller.
func (c *Control) Populate() error {
	c.menu.ClearItems()
	c.actions = map[string]Action{}
	c.main = nil
	c.state = StateBuilt

	snap, err := c.source.Reload()
	if err != nil {
		c.snapshot = prefs.Snapshot{}
		return err
	}
	c.snapshot = snap

	c.main = c.newMain()
	c.actions[actionKey(mainActionID)] = c.main
	events.Action.Register(actionKey(mainActionID))

	for slice := 1; slice <= prefs.MaxSlices; slice++ {
		if !snap.Bool(prefs.SliceKey(slice), false) {
			events.Menu.SliceSkipped(slice)
			continue
		}
		anchorKey := prefs.ItemKey(slice, slice)
		value, ok := snap.String(anchorKey)
		if !ok {
			events.Menu.Filler(slice, slice, "absent")
			c.menu.AddItem(newFiller())
			continue
		}
		anchor := c.resolve(anchorKey, value, levelTop)
		c.menu.AddItem(anchor)

		for item := 1; item <= prefs.MaxItems; item++ {
			if item == slice {
				continue
			}
			key := prefs.ItemKey(slice, item)
			value, ok := snap.String(key)
			if !ok {
				events.Menu.Filler(slice, item, "absent")
				anchor.AddItem(newFiller())
				continue
			}
			anchor.AddItem(c.resolve(key, value, levelNested))
		}
	}
	events.Menu.Populate(len(c.menu.Items()), len(c.actions))
	return nil
}

// resolve turns a configured value into an item and registers its action.
// Values the catalog does not know become fillers.
func (c *Control) resolve(key, value string, level int) *Item {
	entry, ok := c.catalog.Lookup(value)
	if !ok {
		events.Menu.UnknownValue(key, value, c.catalog.Suggest(value))
		return newFiller()
	}
	item := c.makeItem(entry, level)
	c.addAction(entry.Action, entry.Value)
	return item
}

func (c *Control) makeItem(entry resources.Entry, level int) *Item {
	if entry.Value == noneID {
		return newFiller()
	}
	tag := &Tag{ID: entry.Value, Action: entry.Action}
	item := &Item{
		ID:      entry.Value,
		Action:  entry.Action,
		Icon:    entry.Icon,
		Label:   entry.Name,
		Level:   level,
		Enabled: true,
	}
	if entry.Value == "show_tabs" {
		item.View = c.makeTabsView(tag)
		return item
	}
	item.View = newImageView(entry.Icon, tag)
	return item
}

func (c *Control) makeTabsView(tag *Tag) *View {
	count := &View{Kind: ViewText, Text: strconv.Itoa(c.controller.TabCount())}
	return newGroupView(tag, newImageView(resources.IconTabs, nil), count)
}

// addAction registers the dedicated handler for id when its catalog entry has
// no generic action string. Ids without a factory are logged and left to the
// generic path.
func (c *Control) addAction(action, id string) {
	if id == noneID || action != "" {
		return
	}
	key := actionKey(id)
	if _, ok := c.actions[key]; ok {
		return
	}
	factory, ok := c.factories[id]
	if !ok || factory == nil {
		events.Action.Missing(id)
		return
	}
	c.actions[key] = factory()
	events.Action.Register(key)
}
