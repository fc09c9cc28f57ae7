// Package pie builds the quick-control pie from preferences, keeps its items
// in sync with live browser state, and dispatches taps to actions.
//
// A Control moves through Unbuilt -> Built -> Open -> Built -> ... Populate
// (re)builds the tree from a fresh preference snapshot and may be called in
// any state; Open runs the live refresh on every hidden-to-visible
// transition; Close only hides. All methods are expected to run on the host's
// single event loop.
package pie

import (
	"sort"

	"github.com/tshono/ChromePie/internal/browser"
	"github.com/tshono/ChromePie/internal/logging/events"
	"github.com/tshono/ChromePie/internal/prefs"
	"github.com/tshono/ChromePie/internal/resources"
)

// State is the menu lifecycle state.
type State int

const (
	StateUnbuilt State = iota
	StateBuilt
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateBuilt:
		return "built"
	case StateOpen:
		return "open"
	default:
		return "unbuilt"
	}
}

// PreferenceSource reloads the preference snapshot.
type PreferenceSource interface {
	Reload() (prefs.Snapshot, error)
}

// SourceFunc adapts a function to PreferenceSource.
type SourceFunc func() (prefs.Snapshot, error)

func (f SourceFunc) Reload() (prefs.Snapshot, error) {
	return f()
}

// Catalog resolves configured values to their display action and icon.
type Catalog interface {
	Lookup(value string) (resources.Entry, bool)
	Suggest(value string) string
}

// MainHandler is the generic fallback action.
type MainHandler interface {
	Action
	ExecuteMain(c browser.Controller, action string)
}

// Option customises a Control.
type Option func(*Control)

// WithFactories replaces the dedicated action table.
func WithFactories(factories map[string]Factory) Option {
	return func(c *Control) {
		c.factories = factories
	}
}

// WithMain replaces the fallback handler.
func WithMain(main MainHandler) Option {
	return func(c *Control) {
		c.newMain = func() MainHandler { return main }
	}
}

// Control owns one pie menu, its action map and its preference snapshot.
type Control struct {
	source     PreferenceSource
	catalog    Catalog
	controller browser.Controller
	factories  map[string]Factory
	newMain    func() MainHandler

	state    State
	menu     Menu
	actions  map[string]Action
	main     MainHandler
	snapshot prefs.Snapshot
}

// New creates an unbuilt control.
func New(source PreferenceSource, catalog Catalog, controller browser.Controller, opts ...Option) *Control {
	c := &Control{
		source:     source,
		catalog:    catalog,
		controller: controller,
		factories:  DedicatedActions(),
		newMain:    func() MainHandler { return MainAction{} },
		actions:    map[string]Action{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the lifecycle state.
func (c *Control) State() State {
	return c.state
}

// Menu returns the built menu.
func (c *Control) Menu() *Menu {
	return &c.menu
}

// TriggerSide returns the configured open edge.
func (c *Control) TriggerSide() prefs.Side {
	return c.snapshot.TriggerSide()
}

// CanOpenFrom reports whether an open gesture from edge is allowed.
func (c *Control) CanOpenFrom(edge prefs.Side) bool {
	return c.TriggerSide().Allows(edge)
}

// ActionKeys lists the registered action map keys in sorted order.
func (c *Control) ActionKeys() []string {
	keys := make([]string, 0, len(c.actions))
	for k := range c.actions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasAction reports whether a dedicated handler is registered for id.
func (c *Control) HasAction(id string) bool {
	_, ok := c.actions[actionKey(id)]
	return ok
}

// Attach builds the menu the first time it is attached. Later attaches reuse
// the existing tree.
func (c *Control) Attach() error {
	built := c.state != StateUnbuilt
	events.App.Attach(built)
	if built {
		return nil
	}
	return c.Populate()
}

// Open shows the menu, refreshing live state on the hidden-to-visible
// transition. It reports whether the menu is open.
func (c *Control) Open() bool {
	switch c.state {
	case StateUnbuilt:
		return false
	case StateOpen:
		return true
	}
	if !c.OnOpen() {
		return false
	}
	c.state = StateOpen
	events.Menu.Open(len(c.menu.Items()))
	return true
}

// Close hides the menu without touching its items.
func (c *Control) Close() {
	if c.state != StateOpen {
		return
	}
	c.state = StateBuilt
	events.Menu.Close()
}
