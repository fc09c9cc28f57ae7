package pie

import (
	"github.com/tshono/ChromePie/internal/browser"
	"github.com/tshono/ChromePie/internal/prefs"
	"github.com/tshono/ChromePie/internal/resources"
)

// fakeBrowser answers queries from fields and records commands.
type fakeBrowser struct {
	canBack, canForward bool
	desktop, loading    bool
	fullscreen          bool
	tabs                int
	finding, printing   bool
	sync, editBookmarks bool
	bookmarked          bool
	incognito           bool
	url                 string

	calls []string
	menu  []browser.MenuCommand
}

func newFakeBrowser() *fakeBrowser {
	return &fakeBrowser{
		canBack:       true,
		canForward:    true,
		tabs:          1,
		finding:       true,
		printing:      true,
		sync:          true,
		editBookmarks: true,
		url:           "https://example.com/",
	}
}

func (f *fakeBrowser) CanGoBack() bool              { return f.canBack }
func (f *fakeBrowser) CanGoForward() bool           { return f.canForward }
func (f *fakeBrowser) IsDesktopUserAgent() bool     { return f.desktop }
func (f *fakeBrowser) IsLoading() bool              { return f.loading }
func (f *fakeBrowser) IsFullscreen() bool           { return f.fullscreen }
func (f *fakeBrowser) TabCount() int                { return f.tabs }
func (f *fakeBrowser) TabSupportsFinding() bool     { return f.finding }
func (f *fakeBrowser) PrintingSupported() bool      { return f.printing }
func (f *fakeBrowser) SyncSupported() bool          { return f.sync }
func (f *fakeBrowser) EditBookmarksSupported() bool { return f.editBookmarks }
func (f *fakeBrowser) BookmarkExists() bool         { return f.bookmarked }
func (f *fakeBrowser) IsIncognito() bool            { return f.incognito }
func (f *fakeBrowser) URL() string                  { return f.url }

func (f *fakeBrowser) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeBrowser) GoBack() error            { return f.record("GoBack") }
func (f *fakeBrowser) GoForward() error         { return f.record("GoForward") }
func (f *fakeBrowser) Reload() error            { return f.record("Reload") }
func (f *fakeBrowser) StopLoading() error       { return f.record("StopLoading") }
func (f *fakeBrowser) ToggleDesktopSite() error { return f.record("ToggleDesktopSite") }
func (f *fakeBrowser) ToggleFullscreen() error  { return f.record("ToggleFullscreen") }
func (f *fakeBrowser) ShowTabs() error          { return f.record("ShowTabs") }
func (f *fakeBrowser) NewTab() error            { return f.record("NewTab") }
func (f *fakeBrowser) NewIncognitoTab() error   { return f.record("NewIncognitoTab") }
func (f *fakeBrowser) CloseTab() error          { return f.record("CloseTab") }
func (f *fakeBrowser) NextTab() error           { return f.record("NextTab") }
func (f *fakeBrowser) PreviousTab() error       { return f.record("PreviousTab") }
func (f *fakeBrowser) ToggleBookmark() error    { return f.record("ToggleBookmark") }
func (f *fakeBrowser) FindInPage() error        { return f.record("FindInPage") }
func (f *fakeBrowser) Share() error             { return f.record("Share") }
func (f *fakeBrowser) AddToHomeScreen() error   { return f.record("AddToHomeScreen") }
func (f *fakeBrowser) Print() error             { return f.record("Print") }
func (f *fakeBrowser) ScrollToTop() error       { return f.record("ScrollToTop") }
func (f *fakeBrowser) ScrollToBottom() error    { return f.record("ScrollToBottom") }

func (f *fakeBrowser) ExecuteMenuCommand(cmd browser.MenuCommand) error {
	f.menu = append(f.menu, cmd)
	return f.record("ExecuteMenuCommand")
}

// spyAction counts executions.
type spyAction struct {
	id    string
	count *map[string]int
}

func (s spyAction) Execute(browser.Controller) {
	(*s.count)[s.id]++
}

// spyMain records fallback invocations.
type spyMain struct {
	commands []string
}

func (s *spyMain) Execute(browser.Controller) {}

func (s *spyMain) ExecuteMain(_ browser.Controller, action string) {
	s.commands = append(s.commands, action)
}

func staticSource(values map[string]interface{}) PreferenceSource {
	snap := prefs.NewSnapshot(values)
	return SourceFunc(func() (prefs.Snapshot, error) { return snap, nil })
}

func parallelCatalog(values, actions, icons []string) *resources.Table {
	table, err := resources.FromParallel(nil, actions, values, icons)
	if err != nil {
		panic(err)
	}
	return table
}
