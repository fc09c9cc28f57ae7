package events

import "github.com/tshono/ChromePie/internal/logging"

type MenuTracer struct{}

type PrefsTracer struct{}

var (
	Menu  = MenuTracer{}
	Prefs = PrefsTracer{}
)

func (MenuTracer) Populate(topLevel, actions int) {
	logging.Trace("menu.populate", map[string]interface{}{"items": topLevel, "actions": actions})
}

func (MenuTracer) SliceSkipped(slice int) {
	logging.Trace("menu.slice.skip", map[string]interface{}{"slice": slice})
}

func (MenuTracer) Filler(slice, item int, reason string) {
	logging.Trace("menu.filler", map[string]interface{}{"slice": slice, "item": item, "reason": reason})
}

// UnknownValue records a configured value the catalog does not know about.
func (MenuTracer) UnknownValue(key, value, suggestion string) {
	logging.Warn("unknown pie item value", "key", key, "value", value, "suggestion", suggestion)
	logging.Trace("menu.value.unknown", map[string]interface{}{"key": key, "value": value, "suggestion": suggestion})
}

func (MenuTracer) Open(items int) {
	logging.Trace("menu.open", map[string]interface{}{"items": items})
}

func (MenuTracer) Close() {
	logging.Trace("menu.close", nil)
}

func (MenuTracer) Cursor(ring string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"ring": ring, "cursor": cursor})
}

func (MenuTracer) RefreshSkip(id, reason string) {
	logging.Trace("menu.refresh.skip", map[string]interface{}{"id": id, "reason": reason})
}

func (PrefsTracer) Reload(path string, keys int) {
	logging.Trace("prefs.reload", map[string]interface{}{"path": path, "keys": keys})
}

func (PrefsTracer) Changed(path string) {
	logging.Trace("prefs.changed", map[string]interface{}{"path": path})
}

func (PrefsTracer) Set(key string, value interface{}) {
	logging.Trace("prefs.set", map[string]interface{}{"key": key, "value": value})
}
