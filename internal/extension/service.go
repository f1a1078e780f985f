package extension

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conn-castle/valet-php/internal/console"
	"github.com/conn-castle/valet-php/internal/fpmconf"
	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/php"
)

const (
	autostartOff = "xdebug.remote_autostart=0"
	autostartOn  = "xdebug.remote_autostart=1"
)

// VersionSource reports the linked runtime version.
type VersionSource interface {
	LinkedVersion() (php.Version, error)
}

// ProfileStore is the filesystem surface the service needs beyond toggling.
type ProfileStore interface {
	FileStore
	Read(path string) (string, error)
	WriteAsUser(path string, content string) error
}

// Service applies toggles to the linked runtime's conf.d directory.
type Service struct {
	versions VersionSource
	files    ProfileStore
	toggle   *Toggle
	prefix   string
	console  *console.Console
}

// NewService returns a Service for the runtime installed under prefix.
func NewService(versions VersionSource, files ProfileStore, prefix string, c *console.Console) *Service {
	return &Service{
		versions: versions,
		files:    files,
		toggle:   NewToggle(files),
		prefix:   prefix,
		console:  c,
	}
}

// confDir resolves the linked version's conf.d directory, re-querying the linked version.
func (s *Service) confDir() (string, error) {
	v, err := s.versions.LinkedVersion()
	if err != nil {
		return "", err
	}
	pool, err := php.PoolConfigPath(s.prefix, v)
	if err != nil {
		return "", err
	}
	return fpmconf.ExtraConfigDir(pool), nil
}

// Enable turns ext on for the linked runtime.
func (s *Service) Enable(ext string) (bool, error) {
	dir, err := s.confDir()
	if err != nil {
		return false, err
	}
	changed, err := s.toggle.Enable(dir, ext)
	if err != nil {
		return false, err
	}
	if !changed {
		s.console.Info(messages.ExtensionAlreadyEnabledFmt, ext)
		return false, nil
	}
	s.console.Info(messages.ExtensionEnabledFmt, ext)
	return true, nil
}

// Disable turns ext off for the linked runtime.
func (s *Service) Disable(ext string) (bool, error) {
	dir, err := s.confDir()
	if err != nil {
		return false, err
	}
	changed, err := s.toggle.Disable(dir, ext)
	if err != nil {
		return false, err
	}
	if !changed {
		s.console.Info(messages.ExtensionAlreadyDisabledFmt, ext)
		return false, nil
	}
	s.console.Info(messages.ExtensionDisabledFmt, ext)
	return true, nil
}

// Status reports the state of ext for the linked runtime.
func (s *Service) Status(ext string) (State, error) {
	dir, err := s.confDir()
	if err != nil {
		return StateAbsent, err
	}
	state := s.toggle.State(dir, ext)
	s.console.Info(messages.ExtensionStatusFmt, ext, state)
	return state, nil
}

// SetAutostart flips xdebug.remote_autostart in the performance profile.
// It reports false with a warning when the profile has not been written yet.
func (s *Service) SetAutostart(on bool) (bool, error) {
	dir, err := s.confDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(dir, fpmconf.ProfileFileName)
	if !s.files.Exists(path) {
		s.console.Warning(messages.ExtensionProfileMissingFmt, fpmconf.ProfileFileName)
		return false, nil
	}
	content, err := s.files.Read(path)
	if err != nil {
		return false, fmt.Errorf(messages.ExtensionReadProfileFmt, path, err)
	}
	from, to, label := autostartOn, autostartOff, messages.ExtensionAutostartDisabled
	if on {
		from, to, label = autostartOff, autostartOn, messages.ExtensionAutostartEnabled
	}
	if err := s.files.WriteAsUser(path, strings.ReplaceAll(content, from, to)); err != nil {
		return false, fmt.Errorf(messages.ExtensionWriteProfileFmt, path, err)
	}
	s.console.Info(label)
	return true, nil
}
