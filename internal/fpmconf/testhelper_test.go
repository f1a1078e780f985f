package fpmconf

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/conn-castle/valet-php/internal/php"
)

type memStore struct {
	files     map[string]string
	links     map[string]string
	dirs      map[string]bool
	failWrite map[string]error
	writes    []string
	userPaths map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		files:     map[string]string{},
		links:     map[string]string{},
		dirs:      map[string]bool{},
		failWrite: map[string]error{},
		userPaths: map[string]bool{},
	}
}

func (m *memStore) Read(path string) (string, error) {
	content, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return content, nil
}

func (m *memStore) Write(path string, content string) error {
	if err := m.failWrite[path]; err != nil {
		return err
	}
	m.files[path] = content
	m.writes = append(m.writes, path)
	return nil
}

func (m *memStore) WriteAsUser(path string, content string) error {
	if err := m.Write(path, content); err != nil {
		return err
	}
	m.userPaths[path] = true
	return nil
}

func (m *memStore) Exists(path string) bool {
	_, ok := m.files[path]
	return ok || m.dirs[path]
}

func (m *memStore) Remove(path string) error {
	delete(m.files, path)
	return nil
}

func (m *memStore) EnsureDirExists(path string, _ string) error {
	m.dirs[path] = true
	return nil
}

func (m *memStore) Readlink(path string) (string, error) {
	target, ok := m.links[path]
	if !ok {
		return "", fmt.Errorf("readlink %s: %w", path, fs.ErrNotExist)
	}
	return target, nil
}

func (m *memStore) ReadDirNames(path string) ([]string, error) {
	var names []string
	prefix := path + string(filepath.Separator)
	seen := map[string]bool{}
	for dir := range m.dirs {
		if len(dir) <= len(prefix) || dir[:len(prefix)] != prefix {
			continue
		}
		rest := dir[len(prefix):]
		if i := indexSep(rest); i >= 0 {
			rest = rest[:i]
		}
		if !seen[rest] {
			seen[rest] = true
			names = append(names, rest)
		}
	}
	if len(names) == 0 && !m.dirs[path] {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	sort.Strings(names)
	return names, nil
}

func indexSep(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == filepath.Separator {
			return i
		}
	}
	return -1
}

type stubExtensions struct {
	iniPath string
	err     error
}

func (s stubExtensions) MainConfigPath() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.iniPath, nil
}

func (stubExtensions) ExtensionAPIVersion(v php.Version) (string, error) {
	return php.APINumber(v)
}

var errDiskFull = errors.New("disk full")
