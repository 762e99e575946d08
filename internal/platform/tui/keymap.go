package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gem-hunters/internal/config"
	"github.com/vovakirdan/gem-hunters/internal/core"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Up:      newBinding(cfg.Up, "up"),
		Down:    newBinding(cfg.Down, "down"),
		Left:    newBinding(cfg.Left, "left"),
		Right:   newBinding(cfg.Right, "right"),
		Restart: newBinding(cfg.Restart, "new game"),
		Quit:    newBinding(cfg.Quit, "quit"),
	}
}

// DefaultKeyMap returns the bindings from config.Default.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func newBinding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys shortens a key list for the help bar, e.g. [u U up] -> "u/U/↑".
func helpKeys(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case "up":
			k = "↑"
		case "down":
			k = "↓"
		case "left":
			k = "←"
		case "right":
			k = "→"
		}
		labels = append(labels, k)
	}
	return strings.Join(labels, "/")
}

// Direction maps a key press to a move direction, or DirNone.
func (k KeyMap) Direction(msg tea.KeyMsg) core.Direction {
	switch {
	case key.Matches(msg, k.Up):
		return core.DirUp
	case key.Matches(msg, k.Down):
		return core.DirDown
	case key.Matches(msg, k.Left):
		return core.DirLeft
	case key.Matches(msg, k.Right):
		return core.DirRight
	}
	return core.DirNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Quit},
	}
}
