package selection

import "strings"

// AppendQuery appends a rune to the search buffer and refilters.
func (s *State) AppendQuery(r rune) {
	s.query += string(r)
	s.applyFilter()
}

// BackspaceQuery removes the last rune from the search buffer and refilters.
// It reports false when the buffer was already empty.
func (s *State) BackspaceQuery() bool {
	runes := []rune(s.query)
	if len(runes) == 0 {
		return false
	}
	s.query = string(runes[:len(runes)-1])
	s.applyFilter()
	return true
}

// Filtered returns the installed names matching the current query.
func (s *State) Filtered() []string { return s.filtered }

func (s *State) applyFilter() {
	s.filtered = FilterNames(s.installed, s.query)
	s.clampIndex(len(s.filtered))
}

// FilterNames returns the subsequence of names containing query as a
// case-insensitive substring, preserving relative order. An empty query
// matches everything.
func FilterNames(names []string, query string) []string {
	if query == "" {
		return append([]string(nil), names...)
	}
	needle := strings.ToLower(query)
	matched := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			matched = append(matched, name)
		}
	}
	return matched
}
