package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all dashboard key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Tabs
	NextTab   key.Binding
	PrevTab   key.Binding
	SelectTab key.Binding

	// Scrolling (help page)
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Actions
	Print key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("right", "tab", "l"),
			key.WithHelp("→/tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "shift+tab", "h"),
			key.WithHelp("←/shift+tab", "prev tab"),
		),
		SelectTab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to tab"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),

		Print: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "print report"),
		),
	}
}

// helpBindings lists the bindings shown on the help page, grouped by section.
func (k KeyMap) helpBindings() []struct {
	section  string
	bindings []key.Binding
} {
	return []struct {
		section  string
		bindings []key.Binding
	}{
		{"TABS", []key.Binding{k.NextTab, k.PrevTab, k.SelectTab}},
		{"ACTIONS", []key.Binding{k.Print, k.Help, k.Quit, k.ForceQuit}},
		{"HELP PAGE", []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Escape}},
	}
}
