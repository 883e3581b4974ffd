// SPDX-License-Identifier: MIT

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewPagerModelDefaults(t *testing.T) {
	t.Parallel()

	m := NewPagerModel(PagerOptions{Content: "hello"})
	if m.width != 80 {
		t.Errorf("width = %d, want 80", m.width)
	}
	if m.height != 20 {
		t.Errorf("height = %d, want 20", m.height)
	}
	if m.IsDone() {
		t.Error("new pager should not be done")
	}
}

func TestPagerViewShowsTitleAndContent(t *testing.T) {
	t.Parallel()

	m := NewPagerModel(PagerOptions{
		Content: "line one\nline two",
		Title:   "prog.dyms",
		Width:   40,
		Height:  10,
	})

	view := m.View()
	if !strings.Contains(view, "prog.dyms") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "line one") {
		t.Error("view missing content")
	}
}

func TestPagerDismissKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"q", "esc", "enter", "ctrl+c"} {
		key := key
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			m := NewPagerModel(PagerOptions{Content: "x"})

			var msg tea.KeyMsg
			switch key {
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "enter":
				msg = tea.KeyMsg{Type: tea.KeyEnter}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			updated, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatal("expected tea.Quit command")
			}
			if !updated.(*pagerModel).IsDone() {
				t.Error("pager should be done after dismiss key")
			}
			if updated.(*pagerModel).View() != "" {
				t.Error("dismissed pager should render nothing")
			}
		})
	}
}

func TestPagerWindowResize(t *testing.T) {
	t.Parallel()

	m := NewPagerModel(PagerOptions{Content: "x", Width: 40, Height: 10})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	pm := updated.(*pagerModel)
	if pm.viewport.Width != 120 {
		t.Errorf("viewport width = %d, want 120", pm.viewport.Width)
	}
	if pm.viewport.Height != 48 {
		t.Errorf("viewport height = %d, want 48", pm.viewport.Height)
	}
}
