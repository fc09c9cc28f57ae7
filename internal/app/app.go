package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/tshono/ChromePie/internal/backend"
	"github.com/tshono/ChromePie/internal/browser"
	"github.com/tshono/ChromePie/internal/logging"
	"github.com/tshono/ChromePie/internal/pie"
	"github.com/tshono/ChromePie/internal/prefs"
	"github.com/tshono/ChromePie/internal/resources"
	"github.com/tshono/ChromePie/internal/ui"
)

const watchInterval = 500 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	PrefsPath     string
	BookmarksPath string
	StartURL      string
	Incognito     bool
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	Watch         bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, cleanup, err := Build(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	program := tea.NewProgram(model)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Build wires preferences, bookmarks, the simulated browser and the pie into
// a UI model. The returned cleanup stops the watcher and closes the stores.
func Build(ctx context.Context, cfg Config) (*ui.Model, func(), error) {
	store, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open preferences: %w", err)
	}
	bookmarks, err := browser.OpenSQLiteBookmarks(ctx, cfg.BookmarksPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open bookmarks: %w", err)
	}
	closers := []func(){func() {
		if err := bookmarks.Close(); err != nil {
			logging.Error(err)
		}
	}}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	session := browser.NewSession(browser.Options{
		StartURL:  cfg.StartURL,
		Incognito: cfg.Incognito,
		Sync:      !cfg.Incognito,
		Printing:  true,
		Bookmarks: bookmarks,
	})
	control := pie.New(store, resources.Default(), session)
	if err := control.Attach(); err != nil {
		// The pie is still usable (empty) until the file is fixed and the
		// watcher rebuilds it.
		logging.Error(fmt.Errorf("build pie: %w", err))
	}

	var watcher *backend.Watcher
	if cfg.Watch {
		watcher, err = backend.NewWatcher(store.Path(), watchInterval)
		if err != nil {
			logging.Error(err)
			watcher = nil
		} else {
			closers = append(closers, watcher.Stop)
		}
	}
	model := ui.NewModel(control, session, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, watcher)
	return model, cleanup, nil
}
