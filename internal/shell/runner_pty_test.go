//go:build !windows

package shell

import (
	"io"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Passthrough must hand the child the operator's terminal so interactive
// commands (sudo password prompts, brew install progress) behave as if run directly.
func TestPassthroughKeepsTerminal(t *testing.T) {
	ptmx, tty, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = ptmx.Close() })

	r := New(Options{Stdin: tty, Stdout: tty, Stderr: tty})
	require.NoError(t, r.Passthrough("sh", "-c", "test -t 0 && test -t 1 && echo interactive"))
	require.NoError(t, tty.Close())

	data, _ := io.ReadAll(ptmx)
	assert.Contains(t, string(data), "interactive")
}
