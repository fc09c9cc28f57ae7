package command

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/tshono/ChromePie/internal/logging/events"
	"github.com/tshono/ChromePie/internal/pie"
)

// Tapper dispatches a tap on a tagged view.
type Tapper interface {
	Tap(tag *pie.Tag) pie.Binding
}

// Request encapsulates a tap on one pie item.
type Request struct {
	ID    string
	Label string
	Tag   *pie.Tag
}

// Result reports how a tap was handled.
type Result struct {
	ID      string
	Label   string
	Binding pie.Binding
}

// Bus coordinates the execution of pie taps.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute taps req on t and wraps the outcome into a Bubble Tea command while
// emitting trace logs. The tap itself runs on the caller's goroutine so the
// pie is never touched off the UI loop; only the result is delivered later.
func (b *Bus) Execute(t Tapper, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	if t == nil || req.Tag == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	res := Result{ID: req.ID, Label: req.Label, Binding: t.Tap(req.Tag)}
	return func() tea.Msg {
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", res))
		return res
	}
}
