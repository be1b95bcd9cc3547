package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeRamp creates a file of n bytes where byte i is i mod 256.
func writeRamp(t *testing.T, n int) string {
	t.Helper()
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	path := filepath.Join(t.TempDir(), "ramp.bin")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}
