package pie

import "github.com/tshono/ChromePie/internal/logging/events"

// BindingKind says how a tap is handled.
type BindingKind int

const (
	BindingNone BindingKind = iota
	BindingDedicated
	BindingMain
)

func (k BindingKind) String() string {
	switch k {
	case BindingDedicated:
		return "dedicated"
	case BindingMain:
		return "main"
	default:
		return "none"
	}
}

// Binding is the resolved handler for a tapped tag.
type Binding struct {
	Kind    BindingKind
	ID      string
	Action  Action
	Command string
}

// Resolve picks the handler for tag: a dedicated action registered for its
// id, else the main action when the tag carries an action string, else none.
func (c *Control) Resolve(tag *Tag) Binding {
	if tag == nil {
		return Binding{Kind: BindingNone}
	}
	if action, ok := c.actions[actionKey(tag.ID)]; ok && tag.ID != mainActionID {
		return Binding{Kind: BindingDedicated, ID: tag.ID, Action: action}
	}
	if tag.Action != "" && c.main != nil {
		return Binding{Kind: BindingMain, ID: tag.ID, Command: tag.Action}
	}
	return Binding{Kind: BindingNone, ID: tag.ID}
}

// Tap dispatches a tap on a view carrying tag and returns how it was handled.
func (c *Control) Tap(tag *Tag) Binding {
	b := c.Resolve(tag)
	events.Command.Dispatch(b.ID, b.Kind.String())
	switch b.Kind {
	case BindingDedicated:
		b.Action.Execute(c.controller)
	case BindingMain:
		c.main.ExecuteMain(c.controller, b.Command)
	case BindingNone:
	}
	return b
}
