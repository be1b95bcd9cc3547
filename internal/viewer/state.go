package viewer

import (
	"errors"

	"sedecim/internal/buffer"
)

const (
	// VisibleLines is the number of dump lines on screen.
	VisibleLines = 20
	// LineWidth is the number of bytes per dump line.
	LineWidth = buffer.LineSize
)

var (
	ErrParse = errors.New("invalid hex address")
	ErrRange = errors.New("address out of range")
)

// Mode is either Standard or Jump.
type Mode interface {
	isMode()
}

// Standard moves the cursor around the dump.
type Standard struct{}

// Jump accumulates a lowercase hex address in Buffer.
type Jump struct {
	Buffer string
}

func (Standard) isMode() {}
func (Jump) isMode()     {}

// State is the viewer's mutable UI state. Line and Column address the
// selected byte relative to the window offset.
type State struct {
	Mode   Mode
	Line   int
	Column int
	Err    error
}

func NewState() State {
	return State{Mode: Standard{}}
}

// Cursor returns the absolute offset of the selected byte.
func (s State) Cursor(offset int64) int64 {
	return offset + int64(s.Line*LineWidth+s.Column)
}

// Jumping reports whether the state is in Jump mode, with its buffer.
func (s State) Jumping() (Jump, bool) {
	j, ok := s.Mode.(Jump)
	return j, ok
}
