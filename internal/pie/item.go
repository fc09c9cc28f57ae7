package pie

// Tag is the dispatch information attached to a tappable view. Fillers carry
// no tag.
type Tag struct {
	ID     string
	Action string
}

// Item is one entry in the pie, top-level or nested.
type Item struct {
	ID      string
	Action  string
	Icon    string
	Label   string
	Level   int
	Enabled bool
	Filler  bool
	View    *View

	items []*Item
}

func newFiller() *Item {
	return &Item{Level: 1, Filler: true}
}

// Tag returns the item's dispatch tag, nil for fillers.
func (i *Item) Tag() *Tag {
	if i == nil || i.View == nil {
		return nil
	}
	return i.View.Tag
}

// AddItem attaches a nested item.
func (i *Item) AddItem(child *Item) {
	i.items = append(i.items, child)
}

// Items returns the nested items in slot order.
func (i *Item) Items() []*Item {
	return i.items
}

// HasItems reports whether the item opens a nested ring.
func (i *Item) HasItems() bool {
	return len(i.items) > 0
}

// DisplayIcon is the icon currently shown, which the live refresh may have
// swapped away from the configured one.
func (i *Item) DisplayIcon() string {
	if i == nil || i.View == nil {
		return ""
	}
	switch i.View.Kind {
	case ViewImage:
		return i.View.Icon
	case ViewGroup:
		if icon, ok := i.View.ChildAt(tabsIconChild); ok {
			return icon.Icon
		}
	}
	return i.Icon
}

// DisplayText is the text label shown on top of the icon, if any.
func (i *Item) DisplayText() string {
	if i == nil || i.View == nil {
		return ""
	}
	if label, ok := i.View.ChildAt(tabsCountChild); ok && label.Kind == ViewText {
		return label.Text
	}
	return ""
}

// Menu holds the top-level items of the pie.
type Menu struct {
	items []*Item
}

// AddItem appends a top-level item.
func (m *Menu) AddItem(item *Item) {
	m.items = append(m.items, item)
}

// ClearItems drops every item.
func (m *Menu) ClearItems() {
	m.items = nil
}

// Items returns the top-level items in slice order.
func (m *Menu) Items() []*Item {
	return m.items
}

// Walk visits every item, parents before their children.
func (m *Menu) Walk(fn func(*Item)) {
	for _, item := range m.items {
		fn(item)
		for _, child := range item.items {
			fn(child)
		}
	}
}
