package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/michaelangeloio/qapp/internal/testutil"
)

func TestViewNormalModeLayout(t *testing.T) {
	fake := &testutil.FakeSystem{Running: []string{"Safari", "Notion"}}
	m := newTestModel(fake, true, false)

	view := m.View()
	if !strings.Contains(view, normalTitle) {
		t.Fatalf("expected title %q in view:\n%s", normalTitle, view)
	}
	if !strings.Contains(view, "➤ 🌐 Safari") {
		t.Fatalf("expected selected Safari row in view:\n%s", view)
	}
	if !strings.Contains(view, "  📝 Notion") {
		t.Fatalf("expected unselected Notion row in view:\n%s", view)
	}
	if !strings.Contains(view, normalFooter) {
		t.Fatalf("expected key hints in view:\n%s", view)
	}
}

func TestViewSearchModeLayout(t *testing.T) {
	fake := &testutil.FakeSystem{
		Running:   []string{"Safari"},
		Installed: []string{"Notion", "Safari", "Slack"},
	}
	m := newTestModel(fake, true, false)
	h := NewHarness(m)

	h.Send(keyRunes("/"))
	h.Type("sl")
	view := h.View()
	if !strings.Contains(view, "Search Applications: sl"+searchCaret) {
		t.Fatalf("expected search header with query in view:\n%s", view)
	}
	if !strings.Contains(view, matchesTitle) {
		t.Fatalf("expected %q in view:\n%s", matchesTitle, view)
	}
	if !strings.Contains(view, "➤ 💬 Slack") {
		t.Fatalf("expected selected Slack match in view:\n%s", view)
	}
	if !strings.Contains(view, searchFooter) {
		t.Fatalf("expected search key hints in view:\n%s", view)
	}

	h.Type("zz")
	view = h.View()
	if !strings.Contains(view, noMatchesTitle) {
		t.Fatalf("expected %q in view:\n%s", noMatchesTitle, view)
	}
	if strings.Contains(view, "➤") {
		t.Fatalf("expected no selection row without matches, view:\n%s", view)
	}
}

func TestViewStatusReplacesFooterHints(t *testing.T) {
	fake := &testutil.FakeSystem{Running: []string{"Safari"}}
	m := newTestModel(fake, true, false)

	m.st.RecordOpened("Safari")
	view := m.View()
	if !strings.Contains(view, "✅ Safari opened") {
		t.Fatalf("expected opened status in view:\n%s", view)
	}
	if strings.Contains(view, normalFooter) {
		t.Fatalf("expected hints hidden while status is active, view:\n%s", view)
	}

	m.st.RecordKilled("Safari")
	view = m.View()
	if !strings.Contains(view, "❌ Safari terminated") {
		t.Fatalf("expected killed status in view:\n%s", view)
	}
}

func TestViewNoFooterStillShowsStatus(t *testing.T) {
	fake := &testutil.FakeSystem{Running: []string{"Safari"}}
	m := newTestModel(fake, false, false)

	view := m.View()
	if strings.Contains(view, normalFooter) {
		t.Fatalf("expected hints hidden with footer disabled, view:\n%s", view)
	}

	m.st.RecordOpened("Safari")
	view = m.View()
	if !strings.Contains(view, "✅ Safari opened") {
		t.Fatalf("expected status even with footer disabled, view:\n%s", view)
	}
}

func TestViewShowsErrorLine(t *testing.T) {
	fake := &testutil.FakeSystem{Running: []string{"Safari"}}
	m := newTestModel(fake, true, false)
	m.errMsg = "quit request for Safari refused"

	if view := m.View(); !strings.Contains(view, m.errMsg) {
		t.Fatalf("expected error line in view:\n%s", view)
	}
}

func TestViewViewportFollowsSelection(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("App-%02d", i+1)
	}
	fake := &testutil.FakeSystem{Running: names}
	m := newTestModel(fake, true, false)
	h := NewHarness(m)

	h.Send(tea.WindowSizeMsg{Width: 40, Height: 8})
	view := h.View()
	if !strings.Contains(view, "App-01") {
		t.Fatalf("expected first app visible initially, view:\n%s", view)
	}
	if strings.Contains(view, "App-07") {
		t.Fatalf("expected App-07 outside the initial viewport, view:\n%s", view)
	}

	for i := 0; i < 6; i++ {
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	view = h.View()
	if !strings.Contains(view, "➤ 📱 App-07") {
		t.Fatalf("expected selection scrolled into view, view:\n%s", view)
	}
	if strings.Contains(view, "App-01") {
		t.Fatalf("expected App-01 scrolled out, view:\n%s", view)
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	fake := &testutil.FakeSystem{Running: []string{"A Very Long Application Name"}}
	m := newTestModel(fake, true, false)
	h := NewHarness(m)

	h.Send(tea.WindowSizeMsg{Width: 12, Height: 0})
	view := h.View()
	if !strings.Contains(view, ellipsis) {
		t.Fatalf("expected ellipsis in truncated view:\n%s", view)
	}
	for _, line := range strings.Split(view, "\n") {
		if w := runewidth.StringWidth(line); w > 12 {
			t.Fatalf("expected line within 12 cells, got %d: %q", w, line)
		}
	}
}

func TestViewEmptyRunningList(t *testing.T) {
	fake := &testutil.FakeSystem{}
	m := newTestModel(fake, true, false)

	view := m.View()
	if !strings.Contains(view, normalTitle) {
		t.Fatalf("expected title on empty list, view:\n%s", view)
	}
	if strings.Contains(view, "➤") {
		t.Fatalf("expected no selection row on empty list, view:\n%s", view)
	}
}

func TestGlyphCellPadsNarrowGlyphs(t *testing.T) {
	if got := glyphCell("🌐"); got != "🌐" {
		t.Fatalf("expected wide glyph untouched, got %q", got)
	}
	if got := glyphCell("⚙️"); runewidth.StringWidth(got) != glyphCellWidth {
		t.Fatalf("expected padded glyph width %d, got %d", glyphCellWidth, runewidth.StringWidth(got))
	}
}
