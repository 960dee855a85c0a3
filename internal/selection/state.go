// Package selection holds the mode, candidate lists, search query, and
// cursor for one interactive session. All mutation happens through the
// transition methods; the zero index is always a safe selection.
package selection

// Mode identifies which candidate list drives navigation.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
)

// String returns the lowercase mode name used in trace events.
func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "normal"
}

// State tracks the candidate lists and selection cursor for a session. The
// running list backs normal mode; the filtered view of the installed list
// backs search mode.
type State struct {
	running         []string
	installed       []string
	filtered        []string
	installedLoaded bool
	mode            Mode
	query           string
	index           int
	status          Status
	countdown       int
}

// NewState seeds a session with the initial running-application snapshot.
func NewState(running []string) *State {
	return &State{running: append([]string(nil), running...)}
}

// Mode reports the active mode.
func (s *State) Mode() Mode { return s.mode }

// Query returns the current search buffer.
func (s *State) Query() string { return s.query }

// Index returns the selection offset into the active list.
func (s *State) Index() int { return s.index }

// Running returns the running-application snapshot.
func (s *State) Running() []string { return s.running }

// ActiveList returns whichever list is authoritative for the current mode.
func (s *State) ActiveList() []string {
	if s.mode == ModeSearch {
		return s.filtered
	}
	return s.running
}

// SelectedName returns the name under the cursor, or false when the active
// list is empty.
func (s *State) SelectedName() (string, bool) {
	list := s.ActiveList()
	if len(list) == 0 {
		return "", false
	}
	return list[s.index], true
}

// EnterSearch switches to search mode. The installed-application list is
// scanned on first use and cached for the rest of the session, even when the
// scan comes back empty. A failed scan leaves the state in normal mode and
// returns the error.
func (s *State) EnterSearch(scan func() ([]string, error)) error {
	if !s.installedLoaded {
		names, err := scan()
		if err != nil {
			return err
		}
		s.installed = append([]string(nil), names...)
		s.installedLoaded = true
	}
	s.mode = ModeSearch
	s.query = ""
	s.applyFilter()
	s.index = 0
	return nil
}

// ExitSearch returns to normal mode over the running list. The installed
// cache survives for the next search.
func (s *State) ExitSearch() {
	s.mode = ModeNormal
	s.query = ""
	s.index = 0
}

// RefreshRunning replaces the running snapshot and clamps the cursor to the
// new bounds.
func (s *State) RefreshRunning(names []string) {
	s.running = append([]string(nil), names...)
	s.clampIndex(len(s.running))
}
