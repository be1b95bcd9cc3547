package viewer

import (
	"fmt"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sedecim/internal/buffer"
	"sedecim/internal/events"
)

func TestInitialState(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)

	s := n.State()
	assert.Equal(t, Standard{}, s.Mode)
	assert.Zero(t, s.Line)
	assert.Zero(t, s.Column)
	assert.Zero(t, w.Offset())
}

func TestRightWrapsColumn(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)

	var got []int
	for i := 0; i < 10; i++ {
		press(n, keyRight)
		got = append(got, n.State().Column)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0}, got)
}

func TestLeftWrapsColumn(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)

	press(n, keyLeft)
	assert.Equal(t, 9, n.State().Column)
	press(n, keyLeft)
	assert.Equal(t, 8, n.State().Column)
}

func TestDownScrollsAtBottomRow(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)

	press(n, repeat(keyDown, 19)...)
	assert.Equal(t, 19, n.State().Line)
	assert.Zero(t, w.Offset())

	press(n, repeat(keyDown, 6)...)
	assert.Equal(t, 19, n.State().Line)
	assert.Equal(t, int64(60), w.Offset())
}

func TestUpScrollsAtTopRow(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)
	w.SetAddress(100)

	press(n, keyDown, keyDown, keyUp)
	assert.Equal(t, 1, n.State().Line)
	assert.Equal(t, int64(100), w.Offset())

	press(n, keyUp, keyUp, keyUp)
	assert.Equal(t, 0, n.State().Line)
	assert.Equal(t, int64(80), w.Offset())

	press(n, repeat(keyUp, 20)...)
	assert.Equal(t, 0, n.State().Line)
	assert.Zero(t, w.Offset())
}

func TestPageDownCrossesPageBoundary(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)
	press(n, keyRight, keyDown)

	press(n, keyPgDown)
	assert.Equal(t, int64(256), w.Offset())
	assert.True(t, w.Cache().Contains(0))
	assert.True(t, w.Cache().Contains(1))
	assert.Equal(t, 1, n.State().Line)
	assert.Equal(t, 1, n.State().Column)

	layout := Render(n.State(), w)
	assert.Contains(t, layout.Content[0].String(), " 000100  00 01 02")

	press(n, keyPgUp)
	assert.Zero(t, w.Offset())
}

func TestQuit(t *testing.T) {
	w, _ := openRamp(t, 64)
	n := NewNavigator(w)

	assert.False(t, press(n, events.Char('x')))
	assert.False(t, press(n, events.Ctrl('q')))
	assert.True(t, press(n, events.Char('q')))
}

func TestEscIgnoredInStandardMode(t *testing.T) {
	w, _ := openRamp(t, 64)
	n := NewNavigator(w)
	press(n, keyRight)
	before := n.State()

	press(n, keyEsc)
	assert.Equal(t, before, n.State())
}

func TestTickChangesNothing(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)
	press(n, keyDown, keyRight, keyJump, events.Char('a'))
	before := n.State()

	assert.False(t, n.Dispatch(events.Tick{}))
	assert.Equal(t, before, n.State())
	assert.Zero(t, w.Offset())
}

func TestJumpHappyPath(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)

	press(n, keyJump)
	assert.Equal(t, Jump{}, n.State().Mode)

	press(n, typed("1a3")...)
	assert.Equal(t, Jump{Buffer: "1a3"}, n.State().Mode)

	press(n, keyEnter)
	s := n.State()
	assert.Equal(t, Standard{}, s.Mode)
	assert.Equal(t, int64(410), w.Offset())
	assert.Equal(t, 0, s.Line)
	assert.Equal(t, 9, s.Column)
	assert.Equal(t, int64(0x1a3), s.Cursor(w.Offset()))
	assert.NoError(t, s.Err)
	assert.True(t, w.Cache().Contains(1))
}

func TestJumpPastEndRejected(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)
	press(n, keyDown, keyRight)

	press(n, keyJump)
	press(n, typed("ffffff")...)
	press(n, keyEnter)

	s := n.State()
	assert.Equal(t, Jump{Buffer: "ffffff"}, s.Mode)
	assert.ErrorIs(t, s.Err, ErrRange)
	assert.Equal(t, 1, s.Line)
	assert.Equal(t, 1, s.Column)
	assert.Zero(t, w.Offset())

	// The next key clears the message.
	press(n, keyBack)
	assert.NoError(t, n.State().Err)
	assert.Equal(t, Jump{Buffer: "fffff"}, n.State().Mode)
}

func TestJumpEmptyBufferIsParseFailure(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)

	press(n, keyJump, keyEnter)
	assert.ErrorIs(t, n.State().Err, ErrParse)
	assert.Equal(t, Jump{}, n.State().Mode)
}

func TestJumpBufferAcceptsLowercaseHexOnly(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)

	press(n, keyJump)
	press(n, typed("0A9xfG q")...)
	press(n, events.Key{Code: events.KeyRune, Rune: 'b', Mods: events.ModAlt})
	assert.Equal(t, Jump{Buffer: "09f"}, n.State().Mode)
}

func TestJumpBackspaceAndEsc(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)

	press(n, keyJump, keyBack)
	assert.Equal(t, Jump{}, n.State().Mode)

	press(n, typed("12")...)
	press(n, keyBack)
	assert.Equal(t, Jump{Buffer: "1"}, n.State().Mode)

	press(n, keyEsc)
	assert.Equal(t, Standard{}, n.State().Mode)

	press(n, keyJump)
	assert.Equal(t, Jump{}, n.State().Mode, "buffer starts empty again")
}

func TestJumpModeIgnoresNavigation(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)

	press(n, keyJump, keyDown, keyRight, keyPgDown, events.Char('q'))
	s := n.State()
	assert.Equal(t, Jump{}, s.Mode)
	assert.Zero(t, s.Line)
	assert.Zero(t, s.Column)
	assert.Zero(t, w.Offset())
}

func TestJumpRoundTrip(t *testing.T) {
	w, _ := openRamp(t, 1024)

	for _, target := range []int64{0, 1, 9, 10, 255, 256, 419, 1019, 1023, 1024} {
		n := NewNavigator(w)
		press(n, keyJump)
		press(n, typed(fmt.Sprintf("%x", target))...)
		press(n, keyEnter)

		s := n.State()
		require.NoError(t, s.Err, "target %d", target)
		assert.Equal(t, target, s.Cursor(w.Offset()), "target %d", target)
		assert.Zero(t, w.Offset()%LineWidth, "target %d", target)
	}
}

func TestNavigationInvariants(t *testing.T) {
	w, _ := openRamp(t, 1024)
	n := NewNavigator(w)
	rng := rand.New(rand.NewSource(1))

	lineKeys := []events.Key{keyUp, keyDown, keyLeft, keyRight}
	for i := 0; i < 5000; i++ {
		switch r := rng.Intn(20); {
		case r == 0:
			press(n, keyJump)
			press(n, typed(fmt.Sprintf("%x", rng.Int63n(1200)))...)
			press(n, keyEnter, keyEsc)
		default:
			press(n, lineKeys[rng.Intn(len(lineKeys))])
		}

		s := n.State()
		require.Equal(t, Standard{}, s.Mode)
		require.GreaterOrEqual(t, s.Line, 0)
		require.LessOrEqual(t, s.Line, VisibleLines-1)
		require.GreaterOrEqual(t, s.Column, 0)
		require.LessOrEqual(t, s.Column, LineWidth-1)
		require.GreaterOrEqual(t, w.Offset(), int64(0))
		require.LessOrEqual(t, w.Offset(), w.Size())
		require.Zero(t, w.Offset()%LineWidth)
	}
}

func TestPageMovesStayInFile(t *testing.T) {
	w, _ := openRamp(t, 1000)
	n := NewNavigator(w)
	rng := rand.New(rand.NewSource(7))

	all := []events.Key{keyUp, keyDown, keyLeft, keyRight, keyPgUp, keyPgDown}
	for i := 0; i < 2000; i++ {
		press(n, all[rng.Intn(len(all))])
		require.GreaterOrEqual(t, w.Offset(), int64(0))
		require.LessOrEqual(t, w.Offset(), w.Size())
	}
}

func TestPageFaultSurfacesAsError(t *testing.T) {
	w, path := openRamp(t, 1024)
	n := NewNavigator(w)
	require.NoError(t, os.Remove(path))

	press(n, keyPgDown)
	assert.ErrorIs(t, n.State().Err, buffer.ErrIO)

	press(n, keyLeft)
	assert.NoError(t, n.State().Err)

	// A failed load while rendering shows up on the next dispatch.
	Render(n.State(), w)
	n.Dispatch(events.Tick{})
	assert.ErrorIs(t, n.State().Err, buffer.ErrIO)
}
