package viewer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sedecim/internal/buffer"
	"sedecim/internal/events"
)

// openRamp opens a window over an n byte file where byte i is i mod 256.
func openRamp(t *testing.T, n int) (*buffer.Window, string) {
	t.Helper()
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	path := filepath.Join(t.TempDir(), "ramp.bin")
	require.NoError(t, os.WriteFile(path, data, 0644))
	w, err := buffer.Open(path, 0)
	require.NoError(t, err)
	return w, path
}

func press(n *Navigator, keys ...events.Key) bool {
	quit := false
	for _, k := range keys {
		quit = n.Dispatch(events.Input{Key: k})
	}
	return quit
}

func repeat(k events.Key, times int) []events.Key {
	out := make([]events.Key, times)
	for i := range out {
		out[i] = k
	}
	return out
}

func typed(s string) []events.Key {
	var out []events.Key
	for _, r := range s {
		out = append(out, events.Char(r))
	}
	return out
}

var (
	keyUp     = events.Key{Code: events.KeyUp}
	keyDown   = events.Key{Code: events.KeyDown}
	keyLeft   = events.Key{Code: events.KeyLeft}
	keyRight  = events.Key{Code: events.KeyRight}
	keyPgUp   = events.Key{Code: events.KeyPgUp}
	keyPgDown = events.Key{Code: events.KeyPgDown}
	keyEnter  = events.Key{Code: events.KeyEnter}
	keyBack   = events.Key{Code: events.KeyBackspace}
	keyEsc    = events.Key{Code: events.KeyEsc}
	keyJump   = events.Ctrl('g')
)
