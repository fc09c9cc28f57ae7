package pie

// ViewKind distinguishes the visual shapes an item can take.
type ViewKind int

const (
	ViewImage ViewKind = iota
	ViewText
	ViewGroup
)

// View is the visual half of an item: a single image, a text label, or a
// group of child views (the tab counter is an icon plus a count label).
type View struct {
	Kind     ViewKind
	Icon     string
	Text     string
	Tag      *Tag
	children []*View
}

func newImageView(icon string, tag *Tag) *View {
	return &View{Kind: ViewImage, Icon: icon, Tag: tag}
}

func newGroupView(tag *Tag, children ...*View) *View {
	return &View{Kind: ViewGroup, Tag: tag, children: children}
}

// ChildAt returns the n-th declared child of a group view. Composite entries
// are addressed by position rather than by name; callers must tolerate a
// missing child.
func (v *View) ChildAt(n int) (*View, bool) {
	if v == nil || v.Kind != ViewGroup || n < 0 || n >= len(v.children) {
		return nil, false
	}
	return v.children[n], true
}

// ChildCount returns the number of children of a group view.
func (v *View) ChildCount() int {
	if v == nil {
		return 0
	}
	return len(v.children)
}

// Tab counter layout positions.
const (
	tabsIconChild  = 0
	tabsCountChild = 1
)
