package files

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestWriteKeepsPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "www.conf")
	require.NoError(t, os.WriteFile(path, []byte("user = _www\n"), 0o600))

	s := New("")
	require.NoError(t, s.Write(path, "user = jane\n"))

	content, err := s.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "user = jane\n", content)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteAsRootKeepsOwner(t *testing.T) {
	prevEuid, prevChown, prevStat := geteuidFunc, chownFunc, statFunc
	t.Cleanup(func() {
		geteuidFunc, chownFunc, statFunc = prevEuid, prevChown, prevStat
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "www.conf")
	require.NoError(t, os.WriteFile(path, []byte("user = _www\n"), 0o644))

	type chownCall struct {
		path     string
		uid, gid int
	}
	var calls []chownCall
	geteuidFunc = func() int { return 0 }
	statFunc = func(p string, st *unix.Stat_t) error {
		require.Equal(t, path, p)
		st.Uid, st.Gid = 1000, 20
		return nil
	}
	chownFunc = func(p string, uid int, gid int) error {
		calls = append(calls, chownCall{path: p, uid: uid, gid: gid})
		return nil
	}

	s := New("jane")
	require.NoError(t, s.Write(path, "user = jane\n"))

	require.Len(t, calls, 1)
	assert.Equal(t, dir, filepath.Dir(calls[0].path))
	assert.NotEqual(t, path, calls[0].path, "owner is set on the temp file before the rename")
	assert.Equal(t, 1000, calls[0].uid)
	assert.Equal(t, 20, calls[0].gid)

	content, err := s.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "user = jane\n", content)
}

func TestWriteAsRootFailsWhenOwnerCannotBeKept(t *testing.T) {
	prevEuid, prevChown, prevStat := geteuidFunc, chownFunc, statFunc
	t.Cleanup(func() {
		geteuidFunc, chownFunc, statFunc = prevEuid, prevChown, prevStat
	})

	path := filepath.Join(t.TempDir(), "php.ini")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))
	boom := errors.New("operation not permitted")
	geteuidFunc = func() int { return 0 }
	statFunc = func(string, *unix.Stat_t) error { return nil }
	chownFunc = func(string, int, int) error { return boom }

	err := New("").Write(path, "new\n")
	require.ErrorIs(t, err, boom)

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "old\n", string(content))
}

func TestWriteUnprivilegedSkipsOwner(t *testing.T) {
	prevEuid, prevChown := geteuidFunc, chownFunc
	t.Cleanup(func() { geteuidFunc, chownFunc = prevEuid, prevChown })

	path := filepath.Join(t.TempDir(), "www.conf")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))
	geteuidFunc = func() int { return 501 }
	chownFunc = func(string, int, int) error {
		t.Fatal("chown must not run for unprivileged writes")
		return nil
	}

	require.NoError(t, New("").Write(path, "b\n"))
}

func TestMoveExistsRemove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ext-intl.ini")
	dst := src + ".disabled"
	require.NoError(t, os.WriteFile(src, []byte("extension=intl.so\n"), 0o644))

	s := New("")
	require.NoError(t, s.Move(src, dst))
	assert.False(t, s.Exists(src))
	assert.True(t, s.Exists(dst))

	require.NoError(t, s.Remove(dst))
	require.NoError(t, s.Remove(dst), "removing a missing file is a no-op")
	assert.False(t, s.Exists(dst))

	err := s.Move(src, dst)
	require.Error(t, err)
}

func TestEnsureDirExistsAndList(t *testing.T) {
	root := t.TempDir()
	s := New("")
	require.NoError(t, s.EnsureDirExists(filepath.Join(root, "php@7.1", "7.1.33"), "jane"))
	require.NoError(t, s.EnsureDirExists(filepath.Join(root, "php@7.1", "7.1.30"), "jane"))

	names, err := s.ReadDirNames(filepath.Join(root, "php@7.1"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"7.1.30", "7.1.33"}, names)
}

func TestChownOnlyAsRoot(t *testing.T) {
	prevEuid, prevChown, prevLookup := geteuidFunc, chownFunc, lookupUserFunc
	t.Cleanup(func() {
		geteuidFunc, chownFunc, lookupUserFunc = prevEuid, prevChown, prevLookup
	})

	var chowned []string
	chownFunc = func(path string, uid int, gid int) error {
		chowned = append(chowned, path)
		assert.Equal(t, 501, uid)
		assert.Equal(t, 20, gid)
		return nil
	}
	lookupUserFunc = func(name string) (*user.User, error) {
		if name != "jane" {
			return nil, user.UnknownUserError(name)
		}
		return &user.User{Username: "jane", Uid: "501", Gid: "20"}, nil
	}

	path := filepath.Join(t.TempDir(), "z-performance.ini")
	s := New("jane")

	geteuidFunc = func() int { return 501 }
	require.NoError(t, s.WriteAsUser(path, "x"))
	assert.Empty(t, chowned)

	geteuidFunc = func() int { return 0 }
	require.NoError(t, s.WriteAsUser(path, "y"))
	assert.Equal(t, []string{path}, chowned)

	err := s.EnsureDirExists(t.TempDir(), "nobody-here")
	var unknown user.UnknownUserError
	require.True(t, errors.As(err, &unknown))
}
