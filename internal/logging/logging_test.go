package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(999), "UNKNOWN"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

func TestLogLevelSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelDebug.SlogLevel())
	assert.Equal(t, slog.LevelError, LevelError.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogLevel(999).SlogLevel())
}

func TestInitFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelWarn, &buf)
	t.Cleanup(func() { Init(LevelWarn, &bytes.Buffer{}) })

	Debug("Shell", "hidden %s", "entry")
	Warn("Reconciler", "restored %s", "/tmp/www.conf")
	Error("Brew", errors.New("boom"), "link failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden entry")
	assert.Contains(t, out, "restored /tmp/www.conf")
	assert.Contains(t, out, "subsystem=Reconciler")
	assert.Contains(t, out, "error=boom")
}
