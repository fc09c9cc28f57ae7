package events

import "github.com/tshono/ChromePie/internal/logging"

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

// Missing records an id with no dedicated handler; taps fall back to the
// generic path.
func (ActionTracer) Missing(id string) {
	logging.Warn("no dedicated action", "id", id)
	logging.Trace("action.missing", map[string]interface{}{"id": id})
}

func (ActionTracer) Register(key string) {
	logging.Trace("action.register", map[string]interface{}{"key": key})
}

func (ActionTracer) UnknownCommand(command string) {
	logging.Warn("unknown menu command", "command", command)
	logging.Trace("action.main.unknown", map[string]interface{}{"command": command})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Dispatch(id, binding string) {
	logging.Trace("command.dispatch", map[string]interface{}{"id": id, "binding": binding})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
