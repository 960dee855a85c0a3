package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI and the
// CLI output paths.
type Styles struct {
	Header       *lipgloss.Style
	Query        *lipgloss.Style
	Cursor       *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Indicator    *lipgloss.Style
	Footer       *lipgloss.Style
	StatusOpened *lipgloss.Style
	StatusKilled *lipgloss.Style
	Error        *lipgloss.Style
	Notice       *lipgloss.Style
	Confirm      *lipgloss.Style
	Danger       *lipgloss.Style
	Accent       *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	),
	Query: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Bold(true),
	),
	Indicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Background(lipgloss.Color("4")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	),
	StatusOpened: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	),
	StatusKilled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Notice: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	),
	Confirm: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	),
	Danger: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	),
	Accent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
