package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// KeyMap defines the key bindings for the game screen.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Flap  key.Binding
	Pause key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Pause, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "flap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command translates a key message to a game command.
// Keys that are not game input (help, quit, unbound) map to CommandNone.
func (k KeyMap) Command(msg tea.KeyMsg) flappy.Command {
	switch {
	case key.Matches(msg, k.Flap):
		return flappy.CommandPrimary
	case key.Matches(msg, k.Pause):
		return flappy.CommandTogglePause
	case key.Matches(msg, k.Reset):
		return flappy.CommandReset
	}
	return flappy.CommandNone
}

// MouseCommand translates a mouse event. A left button press flaps.
func MouseCommand(msg tea.MouseMsg) flappy.Command {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return flappy.CommandPrimary
	}
	return flappy.CommandNone
}
