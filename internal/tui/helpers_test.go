package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newLoadedPage returns a dashboard page that has seen a 120x43 terminal,
// which gives the page a 120x40 viewport.
func newLoadedPage(t *testing.T, opts Options) (*DashboardPage, tea.Cmd) {
	t.Helper()
	p := NewDashboardPage(context.Background(), opts)
	cmd, _ := p.Update(tea.WindowSizeMsg{Width: 120, Height: 43})
	if !p.Loaded() {
		t.Fatal("page not loaded after first window size")
	}
	return p, cmd
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}
