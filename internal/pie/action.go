package pie

import (
	"fmt"

	"github.com/tshono/ChromePie/internal/browser"
	"github.com/tshono/ChromePie/internal/logging/events"
)

// Action is a unit of behaviour run against the browser when an item is
// tapped. Failures are handled by the action itself.
type Action interface {
	Execute(browser.Controller)
}

// Factory creates a dedicated action.
type Factory func() Action

const (
	actionKeyPrefix = "Action_"
	mainActionID    = "main"
	noneID          = "none"
)

func actionKey(id string) string {
	return actionKeyPrefix + id
}

// commandAction runs a single browser command and records its outcome.
type commandAction struct {
	id  string
	run func(browser.Controller) error
}

func (a commandAction) Execute(c browser.Controller) {
	if err := a.run(c); err != nil {
		events.Action.Error(fmt.Errorf("%s: %w", a.id, err))
		return
	}
	events.Action.Success(a.id)
}

func command(id string, run func(browser.Controller) error) Factory {
	return func() Action { return commandAction{id: id, run: run} }
}

// DedicatedActions maps item ids to the factories of their handlers. Ids not
// listed here go through the main action when their catalog entry carries an
// action string.
func DedicatedActions() map[string]Factory {
	return map[string]Factory{
		"back":    command("back", browser.Controller.GoBack),
		"forward": command("forward", browser.Controller.GoForward),
		"refresh": command("refresh", func(c browser.Controller) error {
			if c.IsLoading() {
				return c.StopLoading()
			}
			return c.Reload()
		}),
		"new_tab":           command("new_tab", browser.Controller.NewTab),
		"new_incognito_tab": command("new_incognito_tab", browser.Controller.NewIncognitoTab),
		"close_tab":         command("close_tab", browser.Controller.CloseTab),
		"show_tabs":         command("show_tabs", browser.Controller.ShowTabs),
		"next_tab":          command("next_tab", browser.Controller.NextTab),
		"previous_tab":      command("previous_tab", browser.Controller.PreviousTab),
		"fullscreen":        command("fullscreen", browser.Controller.ToggleFullscreen),
		"desktop_site":      command("desktop_site", browser.Controller.ToggleDesktopSite),
		"add_bookmark":      command("add_bookmark", browser.Controller.ToggleBookmark),
		"find_in_page":      command("find_in_page", browser.Controller.FindInPage),
		"share":             command("share", browser.Controller.Share),
		"add_to_home":       command("add_to_home", browser.Controller.AddToHomeScreen),
		"print":             command("print", browser.Controller.Print),
		"scroll_to_top":     command("scroll_to_top", browser.Controller.ScrollToTop),
		"scroll_to_bottom":  command("scroll_to_bottom", browser.Controller.ScrollToBottom),
	}
}

// MainAction is the catch-all handler for items that differ only by their
// action string.
type MainAction struct{}

// Execute is a no-op; the main action always needs a command string.
func (MainAction) Execute(browser.Controller) {}

// ExecuteMain runs the menu command named by action. Unknown strings are
// logged and ignored.
func (MainAction) ExecuteMain(c browser.Controller, action string) {
	cmd, ok := browser.ParseMenuCommand(action)
	if !ok {
		events.Action.UnknownCommand(action)
		return
	}
	if err := c.ExecuteMenuCommand(cmd); err != nil {
		events.Action.Error(fmt.Errorf("%s: %w", cmd, err))
		return
	}
	events.Action.Success(string(cmd))
}
