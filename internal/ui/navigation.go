package ui

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/tshono/ChromePie/internal/logging/events"
	"github.com/tshono/ChromePie/internal/pie"
	"github.com/tshono/ChromePie/internal/prefs"
	"github.com/tshono/ChromePie/internal/ui/command"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if !m.isOpen() {
		switch {
		case key.Matches(keyMsg, m.keys.OpenLeft):
			m.openFrom(prefs.SideLeft)
		case key.Matches(keyMsg, m.keys.OpenRight):
			m.openFrom(prefs.SideRight)
		case key.Matches(keyMsg, m.keys.Open):
			m.openFrom(m.control.TriggerSide())
		}
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Prev):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Next):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keys.Enter):
		m.enterNested()
	case key.Matches(keyMsg, m.keys.Leave):
		m.leaveNested()
	case key.Matches(keyMsg, m.keys.Tap):
		return m.handleTap()
	case key.Matches(keyMsg, m.keys.Close):
		m.closePie()
	}
	return nil
}

func (m *Model) isOpen() bool {
	return m.control.State() == pie.StateOpen
}

// openFrom opens the pie for a gesture starting at edge. SideBoth stands for a
// gesture with no particular edge and is accepted by every trigger side.
func (m *Model) openFrom(edge prefs.Side) {
	if edge != prefs.SideBoth && !m.control.CanOpenFrom(edge) {
		m.setInfo(fmt.Sprintf("pie opens from the %s edge only", m.control.TriggerSide()))
		return
	}
	if !m.control.Open() {
		m.errMsg = "pie is not built"
		return
	}
	m.edge = edge
	m.errMsg = ""
	m.sel.Reset(len(m.control.Menu().Items()))
	if len(m.control.Menu().Items()) == 0 {
		m.setInfo("no slices enabled")
	}
}

func (m *Model) closePie() {
	m.control.Close()
	m.sel.Reset(0)
}

func (m *Model) moveCursor(delta int) {
	ring := m.sel.Active()
	if !ring.Move(delta) {
		return
	}
	name := "top"
	if m.sel.Nested {
		name = "nested"
	}
	events.Menu.Cursor(name, ring.Cursor)
}

func (m *Model) enterNested() {
	parent := m.topItem()
	if parent == nil || m.sel.Nested {
		return
	}
	if m.sel.Expand(len(parent.Items())) {
		events.Menu.Cursor("nested", 0)
	}
}

func (m *Model) leaveNested() {
	if m.sel.Collapse() {
		events.Menu.Cursor("top", m.sel.Top.Cursor)
	}
}

func (m *Model) topItem() *pie.Item {
	items := m.control.Menu().Items()
	if m.sel.Top.Cursor < 0 || m.sel.Top.Cursor >= len(items) {
		return nil
	}
	return items[m.sel.Top.Cursor]
}

// selectedItem returns the item under the cursor on the active ring.
func (m *Model) selectedItem() *pie.Item {
	parent := m.topItem()
	if parent == nil || !m.sel.Nested {
		return parent
	}
	children := parent.Items()
	if m.sel.Child.Cursor < 0 || m.sel.Child.Cursor >= len(children) {
		return nil
	}
	return children[m.sel.Child.Cursor]
}

func (m *Model) handleTap() tea.Cmd {
	item := m.selectedItem()
	if item == nil || item.Filler {
		return nil
	}
	if !item.Enabled {
		m.setInfo(fmt.Sprintf("%s is unavailable", itemLabel(item)))
		return nil
	}
	m.errMsg = ""
	m.forceClearInfo()
	cmd := m.bus.Execute(m.control, command.Request{ID: item.ID, Label: itemLabel(item), Tag: item.Tag()})
	m.closePie()
	return cmd
}

func (m *Model) handleTapResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if res.Binding.Kind == pie.BindingNone {
		m.setInfo(fmt.Sprintf("nothing is bound to %s", res.Label))
		return nil
	}
	notice := m.browser.Notice()
	if m.verbose {
		notice = fmt.Sprintf("%s [%s %s]", notice, res.Binding.Kind, res.ID)
	}
	if notice != "" {
		m.setInfo(notice)
	}
	if m.browser.IsLoading() {
		tabID := m.browser.CurrentTabID()
		return tea.Tick(m.loadDelay, func(time.Time) tea.Msg { return loadingDoneMsg{tabID: tabID} })
	}
	return nil
}

// loadingDoneMsg ends the simulated page load of the tab that started it.
type loadingDoneMsg struct {
	tabID string
}

func (m *Model) handleLoadingDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(loadingDoneMsg)
	if !ok {
		return nil
	}
	m.browser.FinishLoading(done.tabID)
	return nil
}

func itemLabel(item *pie.Item) string {
	if item.Label != "" {
		return item.Label
	}
	return item.ID
}
