// Package testutil provides scripted collaborators so the dispatcher, UI,
// and CLI paths can be exercised without touching the OS.
package testutil

// Call records one request made through the fake system.
type Call struct {
	Verb string
	Name string
}

// FakeSystem is a scripted stand-in for macos.System. Result fields are
// returned as-is; queued running snapshots let a test change what a refresh
// sees after an action. Error fields stay in force until cleared.
type FakeSystem struct {
	Running      []string
	RunningQueue [][]string
	Installed    []string

	RunningErr   error
	InstalledErr error
	OpenErr      error
	QuitErr      error

	Calls []Call
}

func (f *FakeSystem) RunningApps() ([]string, error) {
	f.Calls = append(f.Calls, Call{Verb: "running"})
	if f.RunningErr != nil {
		return nil, f.RunningErr
	}
	if len(f.RunningQueue) > 0 {
		f.Running = f.RunningQueue[0]
		f.RunningQueue = f.RunningQueue[1:]
	}
	return append([]string(nil), f.Running...), nil
}

func (f *FakeSystem) InstalledApps() ([]string, error) {
	f.Calls = append(f.Calls, Call{Verb: "installed"})
	if f.InstalledErr != nil {
		return nil, f.InstalledErr
	}
	return append([]string(nil), f.Installed...), nil
}

func (f *FakeSystem) Open(name string) error {
	f.Calls = append(f.Calls, Call{Verb: "open", Name: name})
	return f.OpenErr
}

func (f *FakeSystem) Quit(name string) error {
	f.Calls = append(f.Calls, Call{Verb: "quit", Name: name})
	return f.QuitErr
}

// CallCount returns how many calls with the given verb were recorded.
func (f *FakeSystem) CallCount(verb string) int {
	n := 0
	for _, c := range f.Calls {
		if c.Verb == verb {
			n++
		}
	}
	return n
}

// LastCall returns the most recent recorded call, or false when none exist.
func (f *FakeSystem) LastCall() (Call, bool) {
	if len(f.Calls) == 0 {
		return Call{}, false
	}
	return f.Calls[len(f.Calls)-1], true
}
