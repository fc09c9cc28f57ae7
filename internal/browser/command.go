package browser

import "strings"

// MenuCommand is a browser main-menu entry reachable through the generic
// fallback action.
type MenuCommand string

const (
	MenuRecentTabs  MenuCommand = "open_recent_tabs"
	MenuMostVisited MenuCommand = "open_most_visited"
	MenuBookmarks   MenuCommand = "open_bookmarks"
	MenuHistory     MenuCommand = "open_history"
	MenuDownloads   MenuCommand = "open_downloads"
	MenuSettings    MenuCommand = "open_settings"
	MenuHelp        MenuCommand = "open_help"
)

var menuCommands = map[MenuCommand]string{
	MenuRecentTabs:  "chrome-native://recent-tabs/",
	MenuMostVisited: "chrome-native://newtab/",
	MenuBookmarks:   "chrome-native://bookmarks/",
	MenuHistory:     "chrome://history/",
	MenuDownloads:   "chrome-native://downloads/",
	MenuSettings:    "chrome://settings/",
	MenuHelp:        "chrome://help/",
}

// ParseMenuCommand maps a configured action string onto the closed set of
// menu commands.
func ParseMenuCommand(action string) (MenuCommand, bool) {
	cmd := MenuCommand(strings.TrimSpace(action))
	_, ok := menuCommands[cmd]
	return cmd, ok
}

// MenuCommands lists every known command.
func MenuCommands() []MenuCommand {
	return []MenuCommand{
		MenuRecentTabs,
		MenuMostVisited,
		MenuBookmarks,
		MenuHistory,
		MenuDownloads,
		MenuSettings,
		MenuHelp,
	}
}
