// Package browser defines the capability surface the pie menu drives and an
// in-process simulated browser that implements it.
package browser

import "strings"

// Querier exposes live browser state. Implementations must answer from the
// live host on every call.
type Querier interface {
	CanGoBack() bool
	CanGoForward() bool
	IsDesktopUserAgent() bool
	IsLoading() bool
	IsFullscreen() bool
	TabCount() int
	TabSupportsFinding() bool
	PrintingSupported() bool
	SyncSupported() bool
	EditBookmarksSupported() bool
	BookmarkExists() bool
	IsIncognito() bool
	URL() string
}

// Commander mutates browser state. There is one command per dedicated pie
// action plus ExecuteMenuCommand for the generic fallback.
type Commander interface {
	GoBack() error
	GoForward() error
	Reload() error
	StopLoading() error
	ToggleDesktopSite() error
	ToggleFullscreen() error
	ShowTabs() error
	NewTab() error
	NewIncognitoTab() error
	CloseTab() error
	NextTab() error
	PreviousTab() error
	ToggleBookmark() error
	FindInPage() error
	Share() error
	AddToHomeScreen() error
	Print() error
	ScrollToTop() error
	ScrollToBottom() error
	ExecuteMenuCommand(cmd MenuCommand) error
}

// Controller is the full facade over browser state and commands.
type Controller interface {
	Querier
	Commander
}

var internalSchemes = []string{"chrome://", "chrome-native://"}

// IsInternalURL reports whether url points at a browser-internal page.
func IsInternalURL(url string) bool {
	for _, scheme := range internalSchemes {
		if strings.HasPrefix(url, scheme) {
			return true
		}
	}
	return false
}
