// SPDX-License-Identifier: MIT

package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PagerOptions configures the Pager component.
type PagerOptions struct {
	// Content is the text content to display.
	Content string
	// Title is the title displayed at the top.
	Title string
	// Height limits the visible height (0 for auto).
	Height int
	// Width limits the visible width (0 for auto).
	Width int
}

// pagerModel is the bubbletea model for the pager component.
type pagerModel struct {
	viewport viewport.Model
	title    string
	ready    bool
	done     bool
	width    int
	height   int
}

// NewPagerModel creates a pager model without running it. Exposed for tests
// and for embedding into larger programs.
func NewPagerModel(opts PagerOptions) *pagerModel {
	height := opts.Height
	if height == 0 {
		height = 20
	}

	width := opts.Width
	if width == 0 {
		width = 80
	}

	vpHeight := height - 4 // Leave room for title and footer
	if vpHeight < 1 {
		vpHeight = 10
	}

	vp := viewport.New(width, vpHeight)
	vp.SetContent(opts.Content)

	return &pagerModel{
		viewport: vp,
		title:    opts.Title,
		ready:    true,
		width:    width,
		height:   height,
	}
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc", "enter":
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2 // Leave room for title and footer
		m.ready = true
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	if m.done {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	title := ""
	if m.title != "" {
		title = titleStyle.Render(m.title) + "\n"
	}

	footer := footerStyle.Render("↑/↓: navigate • q/Enter: close")

	content := title + m.viewport.View() + "\n" + footer

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(content)
	}
	return content
}

// IsDone reports whether the pager has been dismissed.
func (m *pagerModel) IsDone() bool {
	return m.done
}

// Pager displays content in a scrollable viewport and blocks until the user
// dismisses it.
func Pager(opts PagerOptions) error {
	model := NewPagerModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
