package dispatcher

import (
	"github.com/tshono/ChromePie/internal/backend"
	"github.com/tshono/ChromePie/internal/logging"
)

// Rebuilder is the part of the pie control the dispatcher drives.
type Rebuilder interface {
	Populate() error
}

// Result reports what an event changed.
type Result struct {
	MenuRebuilt bool
	Err         error
}

// Dispatcher applies backend events to the pie control.
type Dispatcher struct {
	menu Rebuilder
}

func New(menu Rebuilder) *Dispatcher {
	return &Dispatcher{menu: menu}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		logging.Error(evt.Err)
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindPreferences:
		if err := d.menu.Populate(); err != nil {
			logging.Error(err)
			res.Err = err
		}
		res.MenuRebuilt = true
	}
	return res
}
