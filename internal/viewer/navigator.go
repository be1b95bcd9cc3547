package viewer

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"sedecim/internal/buffer"
	"sedecim/internal/events"
)

const hexDigits = "0123456789abcdef"

// Navigator applies events to the view state and is the only code that
// moves the window.
type Navigator struct {
	win   *buffer.Window
	state State
}

func NewNavigator(win *buffer.Window) *Navigator {
	return &Navigator{win: win, state: NewState()}
}

func (n *Navigator) State() State {
	return n.state
}

func (n *Navigator) Window() *buffer.Window {
	return n.win
}

// Dispatch applies one event and reports whether the viewer should quit.
func (n *Navigator) Dispatch(ev events.Event) bool {
	quit := false
	switch ev := ev.(type) {
	case events.Input:
		n.state.Err = nil
		switch mode := n.state.Mode.(type) {
		case Jump:
			n.handleJumpKey(mode, ev.Key)
		default:
			quit = n.handleStandardKey(ev.Key)
		}
	case events.Tick:
	}

	if err := n.win.TakeFault(); err != nil {
		log.Printf("page load failed: %v", err)
		n.state.Err = err
	}
	return quit
}

func (n *Navigator) handleStandardKey(k events.Key) bool {
	switch k.Code {
	case events.KeyRune:
		switch {
		case k.Rune == 'q' && k.Mods == 0:
			return true
		case k.Rune == 'g' && k.Mods&events.ModCtrl != 0:
			n.state.Mode = Jump{}
		}
	case events.KeyUp:
		n.state.Line--
		if n.state.Line < 0 {
			n.state.Line = 0
			n.win.Scroll(buffer.UpLine)
		}
	case events.KeyDown:
		n.state.Line++
		if n.state.Line > VisibleLines-1 {
			n.state.Line = VisibleLines - 1
			n.win.Scroll(buffer.DownLine)
		}
	case events.KeyLeft:
		n.state.Column--
		if n.state.Column < 0 {
			n.state.Column = LineWidth - 1
		}
	case events.KeyRight:
		n.state.Column++
		if n.state.Column > LineWidth-1 {
			n.state.Column = 0
		}
	case events.KeyPgUp:
		n.win.Scroll(buffer.UpPage)
	case events.KeyPgDown:
		n.win.Scroll(buffer.DownPage)
	}
	return false
}

func (n *Navigator) handleJumpKey(j Jump, k events.Key) {
	switch k.Code {
	case events.KeyRune:
		if k.Mods == 0 && strings.ContainsRune(hexDigits, k.Rune) {
			n.state.Mode = Jump{Buffer: j.Buffer + string(k.Rune)}
		}
	case events.KeyBackspace:
		if len(j.Buffer) > 0 {
			n.state.Mode = Jump{Buffer: j.Buffer[:len(j.Buffer)-1]}
		}
	case events.KeyEnter:
		if err := n.jump(j.Buffer); err != nil {
			log.Printf("jump rejected: %v", err)
			n.state.Err = err
		}
	case events.KeyEsc:
		n.state.Mode = Standard{}
	}
}

// jump moves the window to the line holding addr and selects it. On error
// the state is left untouched.
func (n *Navigator) jump(input string) error {
	addr, err := strconv.ParseInt(input, 16, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrParse, input)
	}
	if addr > n.win.Size() {
		return fmt.Errorf("%w: %x is past the end of the file (%x)", ErrRange, addr, n.win.Size())
	}

	column := addr % LineWidth
	n.win.SetAddress(addr - column)
	n.state.Line = 0
	n.state.Column = int(column)
	n.state.Mode = Standard{}
	return nil
}
