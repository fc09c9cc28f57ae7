package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
)

// DefaultURL is the page a fresh tab opens.
const DefaultURL = "chrome-native://newtab/"

var (
	ErrNoHistory       = errors.New("no history entry in that direction")
	ErrUnsupported     = errors.New("not supported on this page")
	ErrLastTab         = errors.New("cannot close the last tab")
	ErrUnknownCommand  = errors.New("unknown menu command")
	ErrBookmarksLocked = errors.New("bookmark editing is disabled")
)

// Tab is one browser tab with its own navigation history.
type Tab struct {
	ID        string
	Incognito bool
	DesktopUA bool
	Loading   bool
	Scroll    int
	history   []string
	index     int
}

// URL returns the tab's current page.
func (t *Tab) URL() string {
	if len(t.history) == 0 {
		return ""
	}
	return t.history[t.index]
}

// Options configures a simulated session.
type Options struct {
	StartURL      string
	Incognito     bool
	Sync          bool
	Printing      bool
	LockBookmarks bool
	Bookmarks     Bookmarks
	// Clipboard receives shared URLs. Defaults to the system clipboard.
	Clipboard func(string) error
}

// Session is an in-process browser implementing Controller. All methods are
// safe to call from the UI loop; the mutex only guards against the loading
// timer finishing a navigation concurrently.
type Session struct {
	mu            sync.Mutex
	tabs          []*Tab
	current       int
	fullscreen    bool
	sync          bool
	printing      bool
	lockBookmarks bool
	bookmarks     Bookmarks
	clipboard     func(string) error
	page          string
	notice        string
	homeScreen    []string
}

// NewSession opens a session with a single tab.
func NewSession(opts Options) *Session {
	s := &Session{
		sync:          opts.Sync,
		printing:      opts.Printing,
		lockBookmarks: opts.LockBookmarks,
		bookmarks:     opts.Bookmarks,
		clipboard:     opts.Clipboard,
	}
	if s.bookmarks == nil {
		s.bookmarks = NewMemoryBookmarks()
	}
	if s.clipboard == nil {
		s.clipboard = clipboard.WriteAll
	}
	start := opts.StartURL
	if start == "" {
		start = DefaultURL
	}
	s.tabs = []*Tab{newTab(start, opts.Incognito)}
	return s
}

func newTab(url string, incognito bool) *Tab {
	return &Tab{ID: uuid.NewString(), Incognito: incognito, history: []string{url}}
}

func (s *Session) tab() *Tab {
	return s.tabs[s.current]
}

// Navigate opens url in the current tab, dropping forward history.
func (s *Session) Navigate(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tab()
	t.history = append(t.history[:t.index+1], url)
	t.index = len(t.history) - 1
	t.Loading = true
	t.Scroll = 0
	s.page = ""
	s.setNotice("Loading %s", url)
}

// FinishLoading marks the page of the tab with id as loaded. A tab closed
// since its load started is ignored.
func (s *Session) FinishLoading(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tabs {
		if t.ID == id {
			t.Loading = false
			return
		}
	}
}

// CurrentTabID returns the id of the active tab.
func (s *Session) CurrentTabID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab().ID
}

// Tabs returns a copy of the open tabs.
func (s *Session) Tabs() []Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Tab, len(s.tabs))
	for i, t := range s.tabs {
		out[i] = *t
	}
	return out
}

// CurrentTab returns the index of the active tab.
func (s *Session) CurrentTab() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Page names the browser surface currently shown (tabs switcher, bookmarks,
// find bar...). Empty means the web page itself.
func (s *Session) Page() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Notice returns the last user-facing status message.
func (s *Session) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

// HomeScreen lists URLs added to the home screen.
func (s *Session) HomeScreen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.homeScreen...)
}

// Bookmarks returns the backing bookmark store.
func (s *Session) Bookmarks() Bookmarks {
	return s.bookmarks
}

func (s *Session) setNotice(format string, args ...interface{}) {
	s.notice = fmt.Sprintf(format, args...)
}

// Queries.

func (s *Session) CanGoBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab().index > 0
}

func (s *Session) CanGoForward() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tab()
	return t.index < len(t.history)-1
}

func (s *Session) IsDesktopUserAgent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab().DesktopUA
}

func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab().Loading
}

func (s *Session) IsFullscreen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fullscreen
}

func (s *Session) TabCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tabs)
}

func (s *Session) TabSupportsFinding() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !IsInternalURL(s.tab().URL())
}

func (s *Session) PrintingSupported() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.printing && !IsInternalURL(s.tab().URL())
}

func (s *Session) SyncSupported() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sync
}

func (s *Session) EditBookmarksSupported() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.lockBookmarks
}

func (s *Session) BookmarkExists() bool {
	ok, err := s.bookmarks.Exists(context.Background(), s.URL())
	if err != nil {
		return false
	}
	return ok
}

func (s *Session) IsIncognito() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab().Incognito
}

func (s *Session) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab().URL()
}

// Commands.

func (s *Session) GoBack() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tab()
	if t.index == 0 {
		return ErrNoHistory
	}
	t.index--
	t.Scroll = 0
	s.page = ""
	s.setNotice("Back to %s", t.URL())
	return nil
}

func (s *Session) GoForward() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tab()
	if t.index >= len(t.history)-1 {
		return ErrNoHistory
	}
	t.index++
	t.Scroll = 0
	s.page = ""
	s.setNotice("Forward to %s", t.URL())
	return nil
}

func (s *Session) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab().Loading = true
	s.setNotice("Reloading %s", s.tab().URL())
	return nil
}

func (s *Session) StopLoading() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab().Loading = false
	s.setNotice("Stopped loading")
	return nil
}

func (s *Session) ToggleDesktopSite() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tab()
	t.DesktopUA = !t.DesktopUA
	t.Loading = true
	if t.DesktopUA {
		s.setNotice("Requesting desktop site")
	} else {
		s.setNotice("Requesting mobile site")
	}
	return nil
}

func (s *Session) ToggleFullscreen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fullscreen = !s.fullscreen
	if s.fullscreen {
		s.setNotice("Entered fullscreen")
	} else {
		s.setNotice("Exited fullscreen")
	}
	return nil
}

func (s *Session) ShowTabs() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = "tabs"
	s.setNotice("%d open tabs", len(s.tabs))
	return nil
}

func (s *Session) NewTab() error {
	s.openTab(false)
	return nil
}

func (s *Session) NewIncognitoTab() error {
	s.openTab(true)
	return nil
}

func (s *Session) openTab(incognito bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs = append(s.tabs, newTab(DefaultURL, incognito))
	s.current = len(s.tabs) - 1
	s.page = ""
	if incognito {
		s.setNotice("Opened incognito tab")
	} else {
		s.setNotice("Opened new tab")
	}
}

func (s *Session) CloseTab() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tabs) == 1 {
		return ErrLastTab
	}
	s.tabs = append(s.tabs[:s.current], s.tabs[s.current+1:]...)
	if s.current >= len(s.tabs) {
		s.current = len(s.tabs) - 1
	}
	s.page = ""
	s.setNotice("Closed tab, %d left", len(s.tabs))
	return nil
}

func (s *Session) NextTab() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = (s.current + 1) % len(s.tabs)
	s.page = ""
	s.setNotice("Tab %d of %d", s.current+1, len(s.tabs))
	return nil
}

func (s *Session) PreviousTab() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = (s.current - 1 + len(s.tabs)) % len(s.tabs)
	s.page = ""
	s.setNotice("Tab %d of %d", s.current+1, len(s.tabs))
	return nil
}

func (s *Session) ToggleBookmark() error {
	if !s.EditBookmarksSupported() {
		return ErrBookmarksLocked
	}
	url := s.URL()
	ctx := context.Background()
	exists, err := s.bookmarks.Exists(ctx, url)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if exists {
		if err := s.bookmarks.Remove(ctx, url); err != nil {
			return err
		}
		s.setNotice("Removed bookmark %s", url)
		return nil
	}
	if err := s.bookmarks.Add(ctx, url, url); err != nil {
		return err
	}
	s.setNotice("Bookmarked %s", url)
	return nil
}

func (s *Session) FindInPage() error {
	if !s.TabSupportsFinding() {
		return ErrUnsupported
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = "find"
	s.setNotice("Find in page")
	return nil
}

func (s *Session) Share() error {
	url := s.URL()
	if IsInternalURL(url) {
		return ErrUnsupported
	}
	if err := s.clipboard(url); err != nil {
		return fmt.Errorf("share %s: %w", url, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setNotice("Copied %s", url)
	return nil
}

func (s *Session) AddToHomeScreen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	url := s.tab().URL()
	if IsInternalURL(url) || s.tab().Incognito {
		return ErrUnsupported
	}
	s.homeScreen = append(s.homeScreen, url)
	s.setNotice("Added %s to home screen", url)
	return nil
}

func (s *Session) Print() error {
	if !s.PrintingSupported() {
		return ErrUnsupported
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = "print"
	s.setNotice("Printing %s", s.tab().URL())
	return nil
}

func (s *Session) ScrollToTop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab().Scroll = 0
	s.setNotice("Scrolled to top")
	return nil
}

func (s *Session) ScrollToBottom() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab().Scroll = -1
	s.setNotice("Scrolled to bottom")
	return nil
}

// ExecuteMenuCommand opens the browser page behind a main-menu command.
func (s *Session) ExecuteMenuCommand(cmd MenuCommand) error {
	url, ok := menuCommands[cmd]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = string(cmd)
	s.setNotice("Opened %s", url)
	return nil
}
