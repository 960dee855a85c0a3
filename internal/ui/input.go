package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/michaelangeloio/qapp/internal/logging/events"
)

// searchCaret trails the query in the search header.
const searchCaret = "_"

func (m *Model) updateSearchCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.searchCursor, cmd = m.searchCursor.Update(msg)
	return cmd
}

func (m *Model) appendToSearch(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if unicode.IsControl(r) {
			return false
		}
	}
	for _, r := range runes {
		m.st.AppendQuery(r)
	}
	m.errMsg = ""
	m.searchCursorDirty = true
	events.Filter.Append(m.st.Query(), len(m.st.Filtered()))
	return true
}

func (m *Model) removeSearchRune() bool {
	if !m.st.BackspaceQuery() {
		return false
	}
	m.errMsg = ""
	m.searchCursorDirty = true
	events.Filter.Backspace(m.st.Query(), len(m.st.Filtered()))
	return true
}

// renderSearchCaret draws the caret through the cursor model so it blinks in
// step with the shared blink schedule.
func (m *Model) renderSearchCaret() string {
	m.searchCursor.SetChar(searchCaret)
	base := m.searchCursor.TextStyle.Inline(true)
	if m.searchCursor.Blink {
		return base.Render(searchCaret)
	}
	if styles.Cursor != nil {
		base = base.Inherit(styles.Cursor.Inline(true)).Blink(false)
		return base.Render(searchCaret)
	}
	return base.Reverse(true).Render(searchCaret)
}
