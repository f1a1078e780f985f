package testutil

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestWriteStubPrintsOutputAndExits(t *testing.T) {
	dir := t.TempDir()
	WriteStub(t, dir, "brew", "php@7.1\nnginx", 3)

	info, err := os.Stat(filepath.Join(dir, "brew"))
	if err != nil {
		t.Fatalf("stat stub: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("expected mode 0755, got %#o", info.Mode().Perm())
	}

	out, err := exec.Command(filepath.Join(dir, "brew")).Output()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Fatalf("expected exit 3, got %v", err)
	}
	if string(out) != "php@7.1\nnginx\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestWriteRecordingStub(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls.log")
	WriteRecordingStub(t, dir, "pecl", logPath)
	PrependPath(t, dir)

	for _, args := range [][]string{{"channel-update", "pecl.php.net"}, {"install", "xdebug-2.9.8"}} {
		if err := exec.Command("pecl", args...).Run(); err != nil {
			t.Fatalf("run stub: %v", err)
		}
	}

	lines := ReadLines(t, logPath)
	want := []string{"pecl channel-update pecl.php.net", "pecl install xdebug-2.9.8"}
	if len(lines) != len(want) || lines[0] != want[0] || lines[1] != want[1] {
		t.Fatalf("unexpected calls %q", lines)
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	if lines := ReadLines(t, filepath.Join(t.TempDir(), "missing")); lines != nil {
		t.Fatalf("expected nil, got %q", lines)
	}
}
