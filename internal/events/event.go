// Package events merges keyboard input and periodic ticks into one ordered
// stream consumed by the viewer.
package events

import "fmt"

type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPgUp
	KeyPgDown
	KeyEnter
	KeyBackspace
	KeyEsc
	KeyOther
)

var keyNames = map[KeyCode]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyEsc:       "esc",
	KeyOther:     "other",
}

type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
)

// Key is a single keystroke. Rune is only meaningful for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
	Mods Modifiers
}

// Char builds a plain character keystroke.
func Char(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Ctrl builds a control-chord keystroke such as ctrl+g.
func Ctrl(r rune) Key {
	return Key{Code: KeyRune, Rune: r, Mods: ModCtrl}
}

func (k Key) String() string {
	var prefix string
	if k.Mods&ModCtrl != 0 {
		prefix += "ctrl+"
	}
	if k.Mods&ModAlt != 0 {
		prefix += "alt+"
	}
	if k.Code == KeyRune {
		return prefix + string(k.Rune)
	}
	if name, ok := keyNames[k.Code]; ok {
		return prefix + name
	}
	return fmt.Sprintf("%skey(%d)", prefix, int(k.Code))
}

// Event is either an Input or a Tick.
type Event interface {
	isEvent()
}

type Input struct {
	Key Key
}

// Tick is emitted when no key arrived within one tick period.
type Tick struct{}

func (Input) isEvent() {}
func (Tick) isEvent()  {}
