package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

func planLines(t *testing.T, m appModel, w, h int) (frame, []string) {
	t.Helper()
	m.width, m.height = w, h
	f := m.plan()
	return f, strings.Split(f.View(), "\n")
}

func TestPlanFrame_ExactSize(t *testing.T) {
	setGlyphs(glyphSetASCII)
	m, _ := newTestModel(t)

	for _, sz := range [][2]int{{40, 12}, {80, 24}, {25, 9}} {
		t.Run(fmt.Sprintf("%dx%d", sz[0], sz[1]), func(t *testing.T) {
			f, lines := planLines(t, m, sz[0], sz[1])
			if len(lines) != sz[1] {
				t.Fatalf("expected %d lines; got %d", sz[1], len(lines))
			}
			for i, ln := range lines {
				if w := xansi.StringWidth(ln); w != sz[0] {
					t.Fatalf("line %d: expected width %d; got %d (%q)", i, sz[0], w, ln)
				}
			}
			if f.layout.header.Height != headerHeight || f.layout.footer.Height != footerHeight {
				t.Fatalf("unexpected band heights: %+v", f.layout)
			}
			if got := f.layout.header.Height + f.layout.body.Height + f.layout.footer.Height; got != sz[1] {
				t.Fatalf("bands should cover the screen; got %d of %d", got, sz[1])
			}
		})
	}
}

func TestPlanFrame_UnknownSizeFallsBack(t *testing.T) {
	m, _ := newTestModel(t)
	_, lines := planLines(t, m, 0, 0)
	if len(lines) != fallbackHeight {
		t.Fatalf("expected fallback height %d; got %d", fallbackHeight, len(lines))
	}
}

func TestPlanFrame_TinyScreenKeepsMinimumBody(t *testing.T) {
	lay := splitScreen(30, 5)
	if lay.body.Height != minBodyHeight {
		t.Fatalf("expected body to keep %d rows; got %d", minBodyHeight, lay.body.Height)
	}
	if lay.footer.Y != headerHeight+minBodyHeight {
		t.Fatalf("expected footer below body; got y=%d", lay.footer.Y)
	}
}

func TestPlanFrame_TitleMenuAndRows(t *testing.T) {
	setGlyphs(glyphSetASCII)
	m, _ := newTestModel(t)
	m, _ = press(t, m, typeKey(tea.KeyDown), typeKey(tea.KeyDown))

	f, lines := planLines(t, m, 60, 12)
	if f.caret != nil {
		t.Fatalf("expected no caret outside add mode")
	}
	if !strings.Contains(lines[1], appTitle) {
		t.Fatalf("expected title in header; got %q", lines[1])
	}

	body := strings.Join(lines[headerHeight:len(lines)-footerHeight], "\n")
	if !strings.Contains(body, ">>Finish a project") {
		t.Fatalf("expected marker on the cursor row; got:\n%s", body)
	}
	if !strings.Contains(body, "  Be a gangster") || strings.Contains(body, ">>Be a gangster") {
		t.Fatalf("expected unselected rows indented without marker; got:\n%s", body)
	}

	footer := lines[len(lines)-2]
	for _, want := range []string{"a Add", "x Delete", "e Edit"} {
		if !strings.Contains(footer, want) {
			t.Fatalf("expected %q in footer; got %q", want, footer)
		}
	}
}

func TestPlanFrame_NoCursorNoMarker(t *testing.T) {
	setGlyphs(glyphSetASCII)
	m, _ := newTestModel(t)
	_, lines := planLines(t, m, 60, 12)
	if strings.Contains(strings.Join(lines, "\n"), ">>") {
		t.Fatalf("expected no marker without a cursor")
	}
}

func TestPlanFrame_AddModeShowsDraftAndCaret(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, runeKey('a'), runeKey('h'), runeKey('i'))

	f, lines := planLines(t, m, 60, 12)
	if f.caret == nil {
		t.Fatalf("expected caret in add mode")
	}
	if *f.caret != (point{X: 0, Y: 0}) {
		t.Fatalf("expected caret at the header origin; got %+v", *f.caret)
	}
	if !strings.Contains(lines[1], "New item:") || !strings.Contains(lines[1], "hi") {
		t.Fatalf("expected the draft in the header; got %q", lines[1])
	}
}

func TestPlanFrame_ModeFooters(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, typeKey(tea.KeyDown), runeKey('e'))
	_, lines := planLines(t, m, 80, 12)
	if footer := lines[len(lines)-2]; !strings.Contains(footer, "Editing") {
		t.Fatalf("expected editing hint; got %q", footer)
	}

	m, _ = press(t, m, typeKey(tea.KeyEnter), runeKey('x'))
	_, lines = planLines(t, m, 80, 12)
	if footer := lines[len(lines)-2]; !strings.Contains(footer, `Delete "Be a gangster"?`) {
		t.Fatalf("expected delete prompt; got %q", footer)
	}
}

func TestPlanFrame_StatusMessage(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, runeKey('e'))
	_, lines := planLines(t, m, 100, 12)
	if footer := lines[len(lines)-2]; !strings.Contains(footer, statusNeedSelection) {
		t.Fatalf("expected status in footer; got %q", footer)
	}
}

func TestPlanFrame_EmptyListHint(t *testing.T) {
	m, _ := newTestModel(t, []string{}...)
	_, lines := planLines(t, m, 60, 12)
	if !strings.Contains(lines[headerHeight+1], "Nothing to do") {
		t.Fatalf("expected empty hint; got %q", lines[headerHeight+1])
	}
}

func TestPlanFrame_ScrollsToCursor(t *testing.T) {
	setGlyphs(glyphSetASCII)
	var items []string
	for i := 0; i < 30; i++ {
		items = append(items, fmt.Sprintf("item %02d", i))
	}
	m, _ := newTestModel(t, items...)
	m.state.list.Select(25)

	_, lines := planLines(t, m, 40, 12)
	body := strings.Join(lines[headerHeight:len(lines)-footerHeight], "\n")
	if !strings.Contains(body, ">>item 25") {
		t.Fatalf("expected cursor row to be visible; got:\n%s", body)
	}
	if strings.Contains(body, "item 00") {
		t.Fatalf("expected the list to scroll; got:\n%s", body)
	}
}

func TestPlanFrame_DoesNotMutate(t *testing.T) {
	m, _ := newTestModel(t)
	m.state.list.Select(1)
	before := m.state.list.Items()
	_ = m.View()
	if i, _ := m.state.list.Selected(); i != 1 {
		t.Fatalf("rendering moved the cursor to %d", i)
	}
	if got := m.state.list.Items(); strings.Join(got, "|") != strings.Join(before, "|") {
		t.Fatalf("rendering changed items")
	}
}

func TestVisibleWindow(t *testing.T) {
	for _, tc := range []struct {
		n, height, cursor int
		has               bool
		start, end        int
	}{
		{0, 5, 0, false, 0, 0},
		{3, 5, 2, true, 0, 3},
		{10, 4, 0, false, 0, 4},
		{10, 4, 3, true, 0, 4},
		{10, 4, 4, true, 1, 5},
		{10, 4, 9, true, 6, 10},
		{10, 0, 9, true, 0, 0},
	} {
		s, e := visibleWindow(tc.n, tc.height, tc.cursor, tc.has)
		if s != tc.start || e != tc.end {
			t.Fatalf("visibleWindow(%d,%d,%d,%v) = [%d,%d); want [%d,%d)",
				tc.n, tc.height, tc.cursor, tc.has, s, e, tc.start, tc.end)
		}
	}
}
