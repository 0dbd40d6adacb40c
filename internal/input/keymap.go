// Package input turns key presses and pointer swipes into game actions.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// KeyMap defines the key bindings for the snake game.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Start   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultSnakeConfig().Input.Keys)
}

// NewKeyMap builds bindings from config. An empty list falls back to the
// default keys for that command.
func NewKeyMap(kb config.KeyBinding) KeyMap {
	def := config.DefaultSnakeConfig().Input.Keys
	return KeyMap{
		Up:      binding(kb.Up, def.Up, "up"),
		Down:    binding(kb.Down, def.Down, "down"),
		Left:    binding(kb.Left, def.Left, "left"),
		Right:   binding(kb.Right, def.Right, "right"),
		Start:   binding(kb.Start, def.Start, "start"),
		Pause:   binding(kb.Pause, def.Pause, "pause"),
		Restart: binding(kb.Restart, def.Restart, "restart"),
		Quit:    binding(kb.Quit, def.Quit, "quit"),
	}
}

func binding(keys, fallback []string, desc string) key.Binding {
	if len(keys) == 0 {
		keys = fallback
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpLabel(keys), desc),
	)
}

// helpLabel joins key names for the help bar, spelling out the space bar.
func helpLabel(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}
