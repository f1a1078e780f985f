package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/valet-php/internal/messages"
)

// WriteFileAtomic writes data to filename by writing a sibling temp file and renaming it into place.
// Readers observe either the previous content or the complete new content, never a partial write.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return WriteFileAtomicFunc(filename, data, perm, nil)
}

// WriteFileAtomicFunc is WriteFileAtomic with a hook that runs on the closed temp
// file just before the rename, e.g. to carry over ownership.
func WriteFileAtomicFunc(filename string, data []byte, perm os.FileMode, beforeRename func(tmpName string) error) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFileFmt, filename, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if err := tmp.Chmod(perm); err != nil {
		cleanup()
		return fmt.Errorf(messages.FsutilSetPermissionsFmt, filename, err)
	}
	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf(messages.FsutilWriteTempFileFmt, filename, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf(messages.FsutilSyncTempFileFmt, filename, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf(messages.FsutilCloseTempFileFmt, filename, err)
	}
	if beforeRename != nil {
		if err := beforeRename(tmpName); err != nil {
			_ = os.Remove(tmpName)
			return fmt.Errorf(messages.FsutilPrepareTempFileFmt, filename, err)
		}
	}
	if err := os.Rename(tmpName, filename); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf(messages.FsutilRenameTempFileFmt, filename, err)
	}
	return syncDir(dir)
}

// syncDir flushes directory metadata so the rename survives a crash.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf(messages.FsutilOpenDirFmt, dir, err)
	}
	defer func() {
		_ = d.Close()
	}()
	if err := d.Sync(); err != nil {
		return fmt.Errorf(messages.FsutilSyncDirFmt, dir, err)
	}
	return nil
}
