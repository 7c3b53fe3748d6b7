package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zackbart/browse/internal/browser"
)

// KeyMap binds keys to browser actions.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Right   key.Binding
	Left    key.Binding
	Enter   key.Binding
	Mode    key.Binding
	Overlay key.Binding
	Gutter  key.Binding
	Home    key.Binding
	End     key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the arrow keys with their wasd aliases.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "open/pan"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "back/pan"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Mode: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "mode"),
		),
		Overlay: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "props"),
		),
		Gutter: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "numbers"),
		),
		Home: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g/G", "top/end"),
		),
		End: key.NewBinding(
			key.WithKeys("G"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key press. Unbound keys and quit give browser.None.
func (k KeyMap) Action(msg tea.KeyMsg) browser.Action {
	switch {
	case key.Matches(msg, k.Up):
		return browser.Retreat
	case key.Matches(msg, k.Down):
		return browser.Advance
	case key.Matches(msg, k.Right):
		return browser.Forward
	case key.Matches(msg, k.Left):
		return browser.Backward
	case key.Matches(msg, k.Enter):
		return browser.Commit
	case key.Matches(msg, k.Mode):
		return browser.ToggleMode
	case key.Matches(msg, k.Overlay):
		return browser.ToggleOverlay
	case key.Matches(msg, k.Gutter):
		return browser.ToggleGutter
	case key.Matches(msg, k.Home):
		return browser.JumpHome
	case key.Matches(msg, k.End):
		return browser.JumpEnd
	}
	return browser.None
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Right, k.Left, k.Mode, k.Overlay, k.Gutter, k.Home, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Right, k.Left, k.Enter},
		{k.Mode, k.Overlay, k.Gutter, k.Home, k.End},
		{k.Quit},
	}
}
