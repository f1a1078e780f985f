package console

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestConsoleLines(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	c := New(&buf)
	c.Info("[php@%s] Linking", "7.2")
	c.Warning("check %s", "php -v")
	c.Output("PHP 7.2.34 (cli)\n\n")
	c.Output("   \n")

	assert.Equal(t, "[php@7.2] Linking\ncheck php -v\nPHP 7.2.34 (cli)\n", buf.String())
}

func TestConsoleNilWriter(t *testing.T) {
	c := New(nil)
	c.Info("dropped")
	assert.NotNil(t, c.Writer())
}
