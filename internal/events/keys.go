package events

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PgUp      key.Binding
	PgDown    key.Binding
	Enter     key.Binding
	Backspace key.Binding
	Esc       key.Binding
	Jump      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up")),
	Down:      key.NewBinding(key.WithKeys("down")),
	Left:      key.NewBinding(key.WithKeys("left")),
	Right:     key.NewBinding(key.WithKeys("right")),
	PgUp:      key.NewBinding(key.WithKeys("pgup")),
	PgDown:    key.NewBinding(key.WithKeys("pgdown")),
	Enter:     key.NewBinding(key.WithKeys("enter")),
	Backspace: key.NewBinding(key.WithKeys("backspace")),
	Esc:       key.NewBinding(key.WithKeys("esc")),
	Jump:      key.NewBinding(key.WithKeys("ctrl+g")),
}

// FromTea translates a bubbletea key message into a Key.
func FromTea(msg tea.KeyMsg) Key {
	switch {
	case key.Matches(msg, keys.Up):
		return Key{Code: KeyUp}
	case key.Matches(msg, keys.Down):
		return Key{Code: KeyDown}
	case key.Matches(msg, keys.Left):
		return Key{Code: KeyLeft}
	case key.Matches(msg, keys.Right):
		return Key{Code: KeyRight}
	case key.Matches(msg, keys.PgUp):
		return Key{Code: KeyPgUp}
	case key.Matches(msg, keys.PgDown):
		return Key{Code: KeyPgDown}
	case key.Matches(msg, keys.Enter):
		return Key{Code: KeyEnter}
	case key.Matches(msg, keys.Backspace):
		return Key{Code: KeyBackspace}
	case key.Matches(msg, keys.Esc):
		return Key{Code: KeyEsc}
	case key.Matches(msg, keys.Jump):
		return Ctrl('g')
	}

	var mods Modifiers
	if msg.Alt {
		mods |= ModAlt
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return Key{Code: KeyRune, Rune: msg.Runes[0], Mods: mods}
		}
	case tea.KeySpace:
		return Key{Code: KeyRune, Rune: ' ', Mods: mods}
	}
	return Key{Code: KeyOther, Mods: mods}
}
