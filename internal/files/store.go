// Package files implements the local file store used by the reconciler,
// the extension toggles, and the repair flow.
package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/conn-castle/valet-php/internal/fsutil"
	"github.com/conn-castle/valet-php/internal/logging"
	"github.com/conn-castle/valet-php/internal/messages"
)

const (
	defaultFilePerm = 0o644
	defaultDirPerm  = 0o755
)

var (
	geteuidFunc    = unix.Geteuid
	chownFunc      = unix.Chown
	statFunc       = unix.Stat
	lookupUserFunc = user.Lookup
)

// Store reads and writes files on the local disk. Writes are atomic.
type Store struct {
	// User owns files written with WriteAsUser and directories created by EnsureDirExists.
	User string
}

// New returns a Store that hands user-owned files to owner.
func New(owner string) *Store {
	return &Store{User: owner}
}

// Read returns the file content.
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the file content, keeping the existing permission bits and,
// when running as root, the existing owner.
func (s *Store) Write(path string, content string) error {
	return s.write(path, content, true)
}

// WriteAsUser writes the file and hands ownership to the operating user.
func (s *Store) WriteAsUser(path string, content string) error {
	if err := s.write(path, content, false); err != nil {
		return err
	}
	return s.chown(path, s.User)
}

func (s *Store) write(path string, content string, keepOwner bool) error {
	perm := os.FileMode(defaultFilePerm)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	var beforeRename func(string) error
	if keepOwner && geteuidFunc() == 0 {
		var st unix.Stat_t
		if err := statFunc(path, &st); err == nil {
			uid, gid := int(st.Uid), int(st.Gid)
			beforeRename = func(tmpName string) error {
				return chownFunc(tmpName, uid, gid)
			}
		}
	}
	if err := fsutil.WriteFileAtomicFunc(path, []byte(content), perm, beforeRename); err != nil {
		return err
	}
	logging.Debug("Files", "wrote %s", path)
	return nil
}

// Exists reports whether path exists.
func (s *Store) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Move renames src to dst.
func (s *Store) Move(src string, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf(messages.FilesMoveFmt, src, dst, err)
	}
	logging.Debug("Files", "moved %s to %s", src, dst)
	return nil
}

// Remove deletes path. A missing path is not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// EnsureDirExists creates path with its parents and hands it to owner.
func (s *Store) EnsureDirExists(path string, owner string) error {
	if err := os.MkdirAll(path, defaultDirPerm); err != nil {
		return fmt.Errorf(messages.FilesCreateDirFmt, path, err)
	}
	return s.chown(path, owner)
}

// Readlink returns the destination of a symbolic link.
func (s *Store) Readlink(path string) (string, error) {
	return os.Readlink(path)
}

// ReadDirNames lists the entry names of a directory.
func (s *Store) ReadDirNames(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// chown hands path to owner. Only root can give files away, so the call is
// skipped for unprivileged runs where files already belong to the caller.
func (s *Store) chown(path string, owner string) error {
	if owner == "" || geteuidFunc() != 0 {
		return nil
	}
	u, err := lookupUserFunc(owner)
	if err != nil {
		return fmt.Errorf(messages.FilesLookupUserFmt, owner, err)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return fmt.Errorf(messages.FilesLookupUserFmt, owner, err)
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return fmt.Errorf(messages.FilesLookupUserFmt, owner, err)
	}
	if err := chownFunc(path, uid, gid); err != nil {
		return fmt.Errorf(messages.FilesChownFmt, path, owner, err)
	}
	return nil
}
