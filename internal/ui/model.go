package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/michaelangeloio/qapp/internal/action"
	"github.com/michaelangeloio/qapp/internal/icon"
	"github.com/michaelangeloio/qapp/internal/logging/events"
	"github.com/michaelangeloio/qapp/internal/selection"
	"github.com/michaelangeloio/qapp/internal/theme"
)

// statusTickInterval is the cadence of the status-message countdown; the
// countdown length lives in selection.StatusTicks.
const statusTickInterval = 100 * time.Millisecond

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// tickMsg advances the status countdown.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(statusTickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the Bubble Tea model for the interactive application browser. It
// owns no list state of its own: list contents, filtering, and the status
// countdown live in selection.State, and OS side effects go through the
// action.Dispatcher.
type Model struct {
	st       *selection.State
	dispatch *action.Dispatcher
	icons    *icon.Resolver
	scan     func() ([]string, error)

	width  int
	height int

	showFooter bool
	searchOnly bool

	chosen   string
	errMsg   string
	fatalErr error

	searchCursor      cursor.Model
	searchCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a model over the provided state. searchOnly marks the
// pick-and-open flow: the session starts in search mode, enter records the
// choice and quits, and esc cancels instead of returning to the list.
func NewModel(st *selection.State, dispatch *action.Dispatcher, icons *icon.Resolver, showFooter, searchOnly bool) *Model {
	m := &Model{
		st:         st,
		dispatch:   dispatch,
		icons:      icons,
		scan:       dispatch.Scanner(),
		showFooter: showFooter,
		searchOnly: searchOnly,
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Query != nil {
		c.TextStyle = *styles.Query
	}
	c.SetChar(searchCaret)
	m.searchCursor = c
	m.registerHandlers()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	events.UI.Mode(m.st.Mode().String())
	return tea.Batch(tickCmd(), m.searchCursor.Focus())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if cmd := m.updateSearchCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t != nil && t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.searchCursorDirty {
		m.searchCursor.Blink = false
		cmds = append(cmds, m.searchCursor.BlinkCmd())
		m.searchCursorDirty = false
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	m.st.TickStatus()
	return tickCmd()
}

// Err reports the error that aborted the session, if any.
func (m *Model) Err() error { return m.fatalErr }

// Chosen returns the application picked in a search-only session, or ""
// when the session was cancelled.
func (m *Model) Chosen() string { return m.chosen }
