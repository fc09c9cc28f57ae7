package ui

import (
	"reflect"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/tshono/ChromePie/internal/backend"
	"github.com/tshono/ChromePie/internal/browser"
	"github.com/tshono/ChromePie/internal/data/dispatcher"
	"github.com/tshono/ChromePie/internal/pie"
	"github.com/tshono/ChromePie/internal/prefs"
	"github.com/tshono/ChromePie/internal/theme"
	"github.com/tshono/ChromePie/internal/ui/command"
	uistate "github.com/tshono/ChromePie/internal/ui/state"
)

const (
	defaultWidth  = 64
	defaultHeight = 22
	infoLifetime  = 5 * time.Second
	// defaultLoadDelay is how long a simulated page load takes.
	defaultLoadDelay = 800 * time.Millisecond
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Browser is the host the pie drives, plus the status the shell displays.
type Browser interface {
	browser.Controller
	Notice() string
	Page() string
	CurrentTabID() string
	FinishLoading(tabID string)
}

// Model implements the Bubble Tea model for the quick-control pie.
type Model struct {
	control *pie.Control
	browser Browser
	sel     uistate.Selection
	edge    prefs.Side

	errMsg         string
	infoMsg        string
	infoExpire     time.Time
	backendLastErr string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	keys      keyMap
	help      help.Model
	loadDelay time.Duration

	handlers map[reflect.Type]msgHandler

	backend    *backend.Watcher
	bus        *command.Bus
	dispatcher *dispatcher.Dispatcher
}

// NewModel initialises the UI around an attached pie control.
func NewModel(control *pie.Control, b Browser, width, height int, showFooter, verbose bool, watcher *backend.Watcher) *Model {
	m := &Model{
		control:    control,
		browser:    b,
		edge:       prefs.SideBoth,
		width:      defaultWidth,
		height:     defaultHeight,
		showFooter: showFooter,
		verbose:    verbose,
		keys:       defaultKeyMap(),
		help:       help.New(),
		loadDelay:  defaultLoadDelay,
		backend:    watcher,
		bus:        command.New(),
		dispatcher: dispatcher.New(control),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):   m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleTapResultMsg,
		reflect.TypeOf(loadingDoneMsg{}):    m.handleLoadingDoneMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	return m.handlers[reflect.TypeOf(msg)]
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth && size.Width > 0 {
		m.width = size.Width
	}
	if !m.fixedHeight && size.Height > 0 {
		m.height = size.Height
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
