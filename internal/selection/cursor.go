package selection

// Direction selects the way Advance moves the selection cursor.
type Direction int

const (
	Next Direction = iota
	Previous
)

// Advance moves the selection cursor one step with wraparound. Advancing an
// empty list is a no-op, and a single-entry list stays pinned at zero.
func (s *State) Advance(d Direction) {
	n := len(s.ActiveList())
	if n == 0 {
		return
	}
	delta := 1
	if d == Previous {
		delta = n - 1
	}
	s.index = (s.index + delta) % n
}

func (s *State) clampIndex(n int) {
	if n == 0 {
		s.index = 0
		return
	}
	if s.index >= n {
		s.index = n - 1
	}
}
