// Package app wires the selection state, dispatcher, and UI model into
// Bubble Tea sessions. Every interactive flow runs through the same program
// lifecycle, so raw mode and the alternate screen are restored on every exit
// path, fatal errors included.
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/michaelangeloio/qapp/internal/action"
	"github.com/michaelangeloio/qapp/internal/icon"
	"github.com/michaelangeloio/qapp/internal/logging/events"
	"github.com/michaelangeloio/qapp/internal/selection"
	"github.com/michaelangeloio/qapp/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	AppsDir    string
	ShowFooter bool
	Verbose    bool
}

// Browse runs the interactive browser over the provided running snapshot.
// The caller takes the snapshot first so query failures and empty results
// are reported before any terminal state changes.
func Browse(system action.System, cfg Config, running []string, icons *icon.Resolver) error {
	st := selection.NewState(running)
	model := ui.NewModel(st, action.New(system), icons, cfg.ShowFooter, false)
	_, err := runProgram(model)
	events.App.Quit("browse")
	return err
}

// OpenSearch runs the search-only picker over installed applications and
// launches the choice once the terminal is back to normal. The returned name
// is "" when the picker was cancelled.
func OpenSearch(system action.System, cfg Config, icons *icon.Resolver) (string, error) {
	st := selection.NewState(nil)
	dispatch := action.New(system)
	if err := st.EnterSearch(dispatch.Scanner()); err != nil {
		return "", err
	}
	model := ui.NewModel(st, dispatch, icons, cfg.ShowFooter, true)
	final, err := runProgram(model)
	events.App.Quit("open-search")
	if err != nil {
		return "", err
	}
	chosen := final.Chosen()
	if chosen == "" {
		return "", nil
	}
	if err := system.Open(chosen); err != nil {
		return chosen, err
	}
	return chosen, nil
}

// runProgram executes the model under the alternate screen. A killed program
// counts as a clean shutdown, and an error the model recorded wins over the
// transport result.
func runProgram(model *ui.Model) (*ui.Model, error) {
	program := tea.NewProgram(model, tea.WithAltScreen())
	out, err := program.Run()
	final := model
	if m, ok := out.(*ui.Model); ok {
		final = m
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return final, err
	}
	return final, final.Err()
}
