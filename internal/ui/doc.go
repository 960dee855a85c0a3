// Package ui contains the Bubble Tea program that powers the application
// browser. The Model focuses on message orchestration; dedicated helpers own
// key handling, text input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update first lets the search cursor model observe the message (it only
//     reacts to its own blink schedule), then routes it through a typed
//     handler registry so each tea.Msg kind is handled by one focused
//     function: key presses, window resizes, and the status tick.
//   - Key handlers (navigation.go) switch on the selection mode: the running
//     list responds to navigation and the open/kill/search keys, search mode
//     treats printable runes as query text. Query editing lives in input.go.
//   - The 100ms tick drives selection.State's status countdown and
//     reschedules itself for as long as the program runs.
//
// State ownership:
//   - All list, filter, and status state lives in selection.State; the Model
//     never duplicates it, so View can derive everything (including the
//     visible window) from the state and the terminal size.
//   - OS side effects flow through action.Dispatcher, which also refreshes
//     the running list after each successful open or kill.
//
// Sessions end three ways: a quit key, a recorded choice in a search-only
// session (the caller opens it after the terminal is restored), or a fatal
// collaborator error held in Model.Err.
package ui
