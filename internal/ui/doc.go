// Package ui contains the Bubble Tea program that hosts the quick-control pie.
// The Model type focuses on message orchestration, while dedicated helpers own
// ring navigation, rendering, and backend updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window sizes, tap results, backend events).
//   - Navigation helpers (internal/ui/navigation.go) open and close the pie,
//     move the cursor around the top ring and into a slice's nested ring, and
//     hand taps to the command bus.
//
// State ownership:
//   - The pie itself (items, actions, lifecycle) lives in internal/pie.Control.
//     The UI never mutates items; it only reads them to render.
//   - Cursor state lives in internal/ui/state.Selection.
//   - Taps go through internal/ui/command, which dispatches on the UI goroutine
//     and delivers the outcome as a command.Result message.
//
// Backend interactions:
//   - A backend.Watcher streams preference file changes; Update waits for those
//     events and hands them to applyBackendEvent, which asks the dispatcher to
//     rebuild the pie. A rebuild hides the pie and resets the selection.
package ui
