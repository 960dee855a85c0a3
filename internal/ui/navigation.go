package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/michaelangeloio/qapp/internal/logging/events"
	"github.com/michaelangeloio/qapp/internal/macos"
	"github.com/michaelangeloio/qapp/internal/selection"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.st.Mode() == selection.ModeSearch {
		return m.handleSearchKey(keyMsg)
	}
	return m.handleNormalKey(keyMsg)
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q", "Q", "esc":
		return tea.Quit
	case "up":
		m.moveCursor(selection.Previous)
	case "down":
		m.moveCursor(selection.Next)
	case "o", "O":
		return m.openSelected()
	case "k", "K":
		return m.killSelected()
	case "/":
		return m.enterSearch()
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.cancelSearch()
	case "enter":
		return m.openSearchSelection()
	case "up":
		m.moveCursor(selection.Previous)
		return nil
	case "down":
		m.moveCursor(selection.Next)
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.removeSearchRune()
	case tea.KeyRunes:
		if !msg.Alt {
			m.appendToSearch(msg.Runes)
		}
	case tea.KeySpace:
		m.appendToSearch([]rune{' '})
	}
	return nil
}

func (m *Model) moveCursor(d selection.Direction) {
	m.st.Advance(d)
	events.UI.Cursor(m.st.Mode().String(), m.st.Index())
}

func (m *Model) openSelected() tea.Cmd {
	name, ok := m.st.SelectedName()
	if !ok {
		return nil
	}
	if err := m.dispatch.Open(m.st, name); err != nil {
		return m.fail(err)
	}
	m.errMsg = ""
	return nil
}

// killSelected asks the selected application to quit. A refusal is shown as
// a transient error line; only a failure to reach the OS tool ends the
// session.
func (m *Model) killSelected() tea.Cmd {
	name, ok := m.st.SelectedName()
	if !ok {
		return nil
	}
	if err := m.dispatch.Kill(m.st, name); err != nil {
		var refused *macos.QuitRefusedError
		if errors.As(err, &refused) {
			m.errMsg = err.Error()
			return nil
		}
		return m.fail(err)
	}
	m.errMsg = ""
	return nil
}

func (m *Model) enterSearch() tea.Cmd {
	if err := m.st.EnterSearch(m.scan); err != nil {
		return m.fail(err)
	}
	m.errMsg = ""
	m.searchCursorDirty = true
	events.UI.Mode(m.st.Mode().String())
	return nil
}

func (m *Model) cancelSearch() tea.Cmd {
	if m.searchOnly {
		return tea.Quit
	}
	m.st.ExitSearch()
	events.UI.Mode(m.st.Mode().String())
	return nil
}

// openSearchSelection opens the highlighted match. In a browse session the
// launch happens in place and the model drops back to the running list; in a
// search-only session the choice is recorded and opened by the caller after
// the terminal is restored.
func (m *Model) openSearchSelection() tea.Cmd {
	name, ok := m.st.SelectedName()
	if !ok {
		return nil
	}
	if m.searchOnly {
		m.chosen = name
		return tea.Quit
	}
	if err := m.dispatch.Open(m.st, name); err != nil {
		return m.fail(err)
	}
	m.errMsg = ""
	m.st.ExitSearch()
	events.UI.Mode(m.st.Mode().String())
	return nil
}

func (m *Model) fail(err error) tea.Cmd {
	m.fatalErr = err
	events.UI.Error(err)
	return tea.Quit
}
