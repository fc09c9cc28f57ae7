package events

import "github.com/tshono/ChromePie/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Attach(built bool) {
	logging.Trace("app.attach", map[string]interface{}{"built": built})
}
