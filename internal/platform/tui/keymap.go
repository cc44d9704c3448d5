package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KetsiaD/Snake-game-JKC/internal/games/snake"
)

// KeyMap holds the key bindings of a session. It doubles as the help
// source for bubbles/help.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns arrow keys plus WASD and vim-style movement.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Screenshot, k.Help, k.Quit},
	}
}

// Translate decodes a key message into an engine key event.
// ok is false when the key carries nothing for the engine; quit reports a
// quit request.
func (k KeyMap) Translate(msg tea.KeyMsg) (ev snake.KeyEvent, ok, quit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return snake.KeyEvent{}, false, true
	case key.Matches(msg, k.Up):
		return snake.DirectionKey(snake.HeadingUp), true, false
	case key.Matches(msg, k.Down):
		return snake.DirectionKey(snake.HeadingDown), true, false
	case key.Matches(msg, k.Left):
		return snake.DirectionKey(snake.HeadingLeft), true, false
	case key.Matches(msg, k.Right):
		return snake.DirectionKey(snake.HeadingRight), true, false
	case key.Matches(msg, k.Restart):
		if len(msg.Runes) > 0 {
			return snake.CharKey(msg.Runes[0]), true, false
		}
		return snake.CharKey('r'), true, false
	}
	return snake.KeyEvent{}, false, false
}
