package selection

// StatusKind tags the transient action feedback shown in the footer.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusOpened
	StatusKilled
)

// StatusTicks is how many render ticks a status message stays visible.
const StatusTicks = 30

// Status carries the outcome of the most recent open or kill action.
type Status struct {
	Kind StatusKind
	Name string
}

// Status returns the active status message, zero when none is showing.
func (s *State) Status() Status { return s.status }

// RecordOpened notes a successful open of name and restarts the countdown.
func (s *State) RecordOpened(name string) {
	s.status = Status{Kind: StatusOpened, Name: name}
	s.countdown = StatusTicks
}

// RecordKilled notes a successful terminate of name and restarts the
// countdown.
func (s *State) RecordKilled(name string) {
	s.status = Status{Kind: StatusKilled, Name: name}
	s.countdown = StatusTicks
}

// TickStatus decays the countdown by one render tick, clearing the status
// exactly when it reaches zero. The countdown never goes negative.
func (s *State) TickStatus() {
	if s.countdown <= 0 {
		return
	}
	s.countdown--
	if s.countdown == 0 {
		s.status = Status{}
	}
}
