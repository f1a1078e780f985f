// Package console renders operator-facing progress lines.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Console writes info, warning, and raw output lines to a writer.
type Console struct {
	out io.Writer
}

// New returns a Console writing to out.
func New(out io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}
	return &Console{out: out}
}

// Writer returns the underlying writer.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Info prints a green informational line.
func (c *Console) Info(format string, args ...any) {
	_, _ = fmt.Fprintln(c.out, color.GreenString(format, args...))
}

// Warning prints a yellow warning line.
func (c *Console) Warning(format string, args ...any) {
	_, _ = fmt.Fprintln(c.out, color.YellowString(format, args...))
}

// Output prints command output verbatim, skipping empty output.
func (c *Console) Output(text string) {
	trimmed := strings.TrimRight(text, "\n")
	if strings.TrimSpace(trimmed) == "" {
		return
	}
	_, _ = fmt.Fprintln(c.out, trimmed)
}
