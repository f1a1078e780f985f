// Package testutil writes executable shell stubs so tests can stand in for
// brew, pecl and php on PATH.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable stub that prints output and exits with exitCode.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string, output string, exitCode int) {
	t.Helper()
	script := fmt.Sprintf("#!/bin/sh\ncat <<'STUB_EOF'\n%s\nSTUB_EOF\nexit %d\n", output, exitCode)
	writeExecutable(t, filepath.Join(dir, name), script)
}

// WriteRecordingStub writes an executable stub that appends its arguments to logPath
// as one line per invocation, then succeeds.
func WriteRecordingStub(t *testing.T, dir string, name string, logPath string) {
	t.Helper()
	script := fmt.Sprintf("#!/bin/sh\necho \"%s $*\" >> %q\n", name, logPath)
	writeExecutable(t, filepath.Join(dir, name), script)
}

// ReadLines returns the lines of path, or nil when it does not exist.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// PrependPath puts dir first on PATH for the duration of the test.
func PrependPath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func writeExecutable(t *testing.T, path string, script string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}
