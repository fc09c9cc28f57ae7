package resources

// Icon keys swapped in by the live refresh.
const (
	IconMobile          = "mobile"
	IconDesktop         = "desktop"
	IconCancel          = "cancel"
	IconRefresh         = "refresh"
	IconExitFullscreen  = "exit-fullscreen"
	IconEnterFullscreen = "enter-fullscreen"
	IconRemoveBookmark  = "remove-bookmark"
	IconAddBookmark     = "add-bookmark"
	IconTabs            = "tabs"
)

const missingGlyph = "?"

var glyphs = map[string]string{
	"none":              "·",
	"back":              "←",
	"forward":           "→",
	IconRefresh:         "↻",
	IconCancel:          "✕",
	"new-tab":           "+",
	"incognito":         "◐",
	"close-tab":         "⨯",
	IconTabs:            "▣",
	"next-tab":          "»",
	"previous-tab":      "«",
	IconEnterFullscreen: "⤢",
	IconExitFullscreen:  "⤡",
	IconDesktop:         "▭",
	IconMobile:          "▯",
	IconAddBookmark:     "☆",
	IconRemoveBookmark:  "★",
	"find":              "⌕",
	"share":             "⇪",
	"add-to-home":       "⌂",
	"print":             "⎙",
	"scroll-top":        "⇞",
	"scroll-bottom":     "⇟",
	"recent-tabs":       "◷",
	"most-visited":      "✦",
	"bookmarks":         "☰",
	"history":           "⟲",
	"downloads":         "↓",
	"settings":          "⚙",
	"help":              "?",
}

// Glyph resolves an icon key to the glyph drawn for it.
func Glyph(key string) string {
	if g, ok := glyphs[key]; ok {
		return g
	}
	return missingGlyph
}

// HasGlyph reports whether key names a known icon.
func HasGlyph(key string) bool {
	_, ok := glyphs[key]
	return ok
}
