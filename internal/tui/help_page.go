package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpPage is a scrollable key reference.
type HelpPage struct {
	keys     KeyMap
	viewport viewport.Model
}

// NewHelpPage creates the help page for keys.
func NewHelpPage(keys KeyMap) *HelpPage {
	return &HelpPage{keys: keys, viewport: viewport.New(0, 0)}
}

func (h *HelpPage) ID() string { return PageHelp }

func (h *HelpPage) Init() tea.Cmd {
	h.viewport.GotoTop()
	return nil
}

func (h *HelpPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.resize(msg.Width, msg.Height)
		return nil, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.ForceQuit):
			return tea.Quit, nil
		case key.Matches(msg, h.keys.Help), key.Matches(msg, h.keys.Escape), key.Matches(msg, h.keys.Quit):
			return nil, &PageNav{PageID: PageDashboard}
		case key.Matches(msg, h.keys.Up):
			h.viewport.ScrollUp(1)
		case key.Matches(msg, h.keys.Down):
			h.viewport.ScrollDown(1)
		case key.Matches(msg, h.keys.PageUp):
			h.viewport.PageUp()
		case key.Matches(msg, h.keys.PageDown):
			h.viewport.PageDown()
		}
	}
	return nil, nil
}

// resize fits the viewport inside the modal frame.
func (h *HelpPage) resize(width, height int) {
	modalWidth := width - 8   // 4 chars margin on each side
	modalHeight := height - 4 // 2 lines margin top and bottom

	h.viewport.Width = max(1, modalWidth-4)
	h.viewport.Height = max(1, modalHeight-4)
	h.viewport.SetContent(h.content())
}

func (h *HelpPage) content() string {
	var b strings.Builder
	b.WriteString("Executive Security Dashboard Help\n")
	for _, group := range h.keys.helpBindings() {
		b.WriteString("\n")
		b.WriteString(group.section)
		b.WriteString(":\n")
		for _, binding := range group.bindings {
			help := binding.Help()
			fmt.Fprintf(&b, "  %-14s - %s\n", help.Key, help.Desc)
		}
	}
	b.WriteString("\nTABS:\n")
	b.WriteString("  Overview, Incident Details and Trends & Analysis. Printing writes\n")
	b.WriteString("  a plain-text report of every tab to the print directory.\n")
	return b.String()
}

func (h *HelpPage) View(width, height int) string {
	modalWidth := width - 8
	modalHeight := height - 4
	if modalWidth < 10 || modalHeight < 6 {
		return h.viewport.View()
	}

	contentPane := lipgloss.NewStyle().
		Width(h.viewport.Width).
		Height(h.viewport.Height).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(h.viewport.View())

	header := lipgloss.NewStyle().
		Width(h.viewport.Width).
		Foreground(ColorBlue).
		Bold(true).
		Render("Help")

	statusBar := helpStyle.Render("↑/↓: Scroll | PgUp/PgDn: Page | ?/ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}
