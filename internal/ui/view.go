package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/michaelangeloio/qapp/internal/selection"
	"github.com/muesli/reflow/truncate"
)

const (
	normalTitle    = "Running Applications"
	searchTitle    = "Search Applications: "
	matchesTitle   = "Matching Applications"
	noMatchesTitle = "No matching applications"

	normalFooter = "↑/↓: Navigate   O: Open   K: Kill   /: Search   Q: Quit"
	searchFooter = "↑/↓: Navigate   Enter: Open   Esc: Cancel   Backspace: Delete"

	selectionIndicator = "➤ "
	ellipsis           = "…"

	// glyphCellWidth normalizes icon glyphs so names line up regardless of
	// how wide the terminal draws each emoji.
	glyphCellWidth = 2
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text already carries ANSI escapes; measure and cut with ANSI-aware helpers
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, m.headerLine())
	lines = append(lines, styledLine{})
	if title := m.listTitle(); title != "" {
		lines = append(lines, styledLine{text: title, style: styles.Header})
	}
	names := m.st.ActiveList()
	start, end := m.viewportBounds(len(names))
	for i := start; i < end; i++ {
		lines = append(lines, m.buildItemLine(names[i], i))
	}
	lines = append(lines, styledLine{})
	lines = append(lines, m.footerLine())
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: m.errMsg, style: styles.Error})
	}
	lines = limitHeight(lines, m.height)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) headerLine() styledLine {
	if m.st.Mode() != selection.ModeSearch {
		return styledLine{text: normalTitle, style: styles.Header}
	}
	label := searchTitle
	if styles.Header != nil {
		label = styles.Header.Render(label)
	}
	query := m.st.Query()
	if styles.Query != nil && query != "" {
		query = styles.Query.Render(query)
	}
	return styledLine{text: label + query + m.renderSearchCaret(), raw: true}
}

func (m *Model) listTitle() string {
	if m.st.Mode() != selection.ModeSearch {
		return ""
	}
	if len(m.st.Filtered()) == 0 {
		return noMatchesTitle
	}
	return matchesTitle
}

func (m *Model) buildItemLine(name string, idx int) styledLine {
	indicator := "  "
	lineStyle := styles.Item
	selected := idx == m.st.Index()
	if selected {
		indicator = selectionIndicator
		lineStyle = styles.SelectedItem
	}
	text := indicator + glyphCell(m.icons.Resolve(name)) + " " + name
	if selected && m.width > 0 {
		// Pad so the highlight background spans the full row.
		if pad := m.width - runewidth.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{text: text, style: lineStyle}
}

// footerLine shows the active status confirmation while its countdown runs,
// otherwise the key hints for the current mode.
func (m *Model) footerLine() styledLine {
	switch st := m.st.Status(); st.Kind {
	case selection.StatusOpened:
		return styledLine{text: "✅ " + st.Name + " opened", style: styles.StatusOpened}
	case selection.StatusKilled:
		return styledLine{text: "❌ " + st.Name + " terminated", style: styles.StatusKilled}
	}
	if !m.showFooter {
		return styledLine{}
	}
	if m.st.Mode() == selection.ModeSearch {
		return styledLine{text: searchFooter, style: styles.Footer}
	}
	return styledLine{text: normalFooter, style: styles.Footer}
}

// viewportBounds derives the visible slice of the active list from the
// selected index alone, keeping the selection on screen without tracking a
// scroll offset.
func (m *Model) viewportBounds(n int) (int, int) {
	maxItems := m.maxVisibleItems()
	if maxItems <= 0 || n <= maxItems {
		return 0, n
	}
	start := m.st.Index() - maxItems + 1
	if start < 0 {
		start = 0
	}
	if start+maxItems > n {
		start = n - maxItems
	}
	return start, start + maxItems
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 4 // header, surrounding blanks, footer
	if m.st.Mode() == selection.ModeSearch {
		used++ // list title
	}
	if m.errMsg != "" {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	return nil
}

func glyphCell(glyph string) string {
	if pad := glyphCellWidth - runewidth.StringWidth(glyph); pad > 0 {
		return glyph + strings.Repeat(" ", pad)
	}
	return glyph
}

func limitHeight(lines []styledLine, height int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	return lines[:height]
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), ellipsis)
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, ellipsis)
}
