// Package action dispatches open and kill requests against the OS and feeds
// the outcomes back into the selection state.
package action

import (
	"github.com/michaelangeloio/qapp/internal/logging"
	"github.com/michaelangeloio/qapp/internal/logging/events"
	"github.com/michaelangeloio/qapp/internal/selection"
)

// System is the slice of OS behavior the dispatcher drives. macos.System is
// the production implementation.
type System interface {
	RunningApps() ([]string, error)
	InstalledApps() ([]string, error)
	Open(name string) error
	Quit(name string) error
}

type Dispatcher struct {
	system System
}

func New(system System) *Dispatcher {
	return &Dispatcher{system: system}
}

// Open launches name and, on success, records the status and refreshes the
// running snapshot. A launch failure is returned to the caller untouched.
func (d *Dispatcher) Open(st *selection.State, name string) error {
	if err := d.system.Open(name); err != nil {
		events.Action.Error("open", name, err)
		return err
	}
	st.RecordOpened(name)
	events.Action.Opened(name)
	d.RefreshRunning(st)
	return nil
}

// Kill asks name to quit and, on success, records the status and refreshes
// the running snapshot. Refusals and invocation failures are returned for
// the caller to classify.
func (d *Dispatcher) Kill(st *selection.State, name string) error {
	if err := d.system.Quit(name); err != nil {
		events.Action.Error("kill", name, err)
		return err
	}
	st.RecordKilled(name)
	events.Action.Killed(name)
	d.RefreshRunning(st)
	return nil
}

// RefreshRunning re-queries the visible application set into st. A failed
// query keeps the previous snapshot and only logs; the session never aborts
// over a refresh.
func (d *Dispatcher) RefreshRunning(st *selection.State) bool {
	names, err := d.system.RunningApps()
	if err != nil {
		logging.Error(err)
		events.Action.RefreshFailed(err)
		return false
	}
	st.RefreshRunning(names)
	events.Action.Refreshed(len(names))
	return true
}

// Scanner adapts the installed-app scan for State.EnterSearch's lazy load.
func (d *Dispatcher) Scanner() func() ([]string, error) {
	return func() ([]string, error) {
		names, err := d.system.InstalledApps()
		if err != nil {
			events.Scan.Failed(err)
			return nil, err
		}
		events.Scan.Loaded(len(names))
		return names, nil
	}
}
