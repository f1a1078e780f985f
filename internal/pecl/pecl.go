// Package pecl manages PHP extensions through PECL and resolves the
// runtime's own configuration paths.
package pecl

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/conn-castle/valet-php/internal/logging"
	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/php"
)

const (
	channel          = "pecl.php.net"
	loadedConfigKey  = "Loaded Configuration File:"
	noneConfigMarker = "(none)"
)

// pinnedReleases lists extension releases that still build against older runtimes.
var pinnedReleases = map[php.Version]map[string]string{
	php.V56: {"xdebug": "xdebug-2.5.5", "apcu": "apcu-4.0.11"},
	php.V70: {"xdebug": "xdebug-2.7.2"},
	php.V71: {"xdebug": "xdebug-2.9.8"},
	php.V72: {"xdebug": "xdebug-2.9.8"},
	php.V73: {"xdebug": "xdebug-2.9.8"},
}

// Runner executes external commands.
type Runner interface {
	RunAsUser(name string, args ...string) (string, error)
	Passthrough(name string, args ...string) error
}

// Manager implements extension-manager operations with the pecl and php CLIs.
type Manager struct {
	runner     Runner
	extensions []string
}

// New returns a Manager that installs extensions on every reconcile.
func New(runner Runner, extensions []string) *Manager {
	return &Manager{runner: runner, extensions: append([]string(nil), extensions...)}
}

// RefreshChannel updates the PECL channel metadata.
func (m *Manager) RefreshChannel() error {
	_, err := m.runner.RunAsUser("pecl", "channel-update", channel)
	return err
}

// InstallExtensions installs every configured extension missing from the linked runtime.
func (m *Manager) InstallExtensions(v php.Version) error {
	if len(m.extensions) == 0 {
		return nil
	}
	installed, err := m.installed()
	if err != nil {
		return err
	}
	for _, ext := range m.extensions {
		name := strings.ToLower(strings.TrimSpace(ext))
		if name == "" || installed[name] {
			continue
		}
		release := Release(v, name)
		logging.Info("PECL", "installing %s for php %s", release, v)
		if err := m.runner.Passthrough("pecl", "install", release); err != nil {
			return fmt.Errorf(messages.PeclInstallFailedFmt, release, v, err)
		}
	}
	return nil
}

// Release returns the PECL package argument to install for ext on v.
func Release(v php.Version, ext string) string {
	if pinned, ok := pinnedReleases[v][ext]; ok {
		return pinned
	}
	return ext
}

// installed parses `pecl list` into a set of lowercase package names.
func (m *Manager) installed() (map[string]bool, error) {
	out, err := m.runner.RunAsUser("pecl", "list")
	if err != nil {
		return nil, err
	}
	return parseList(out), nil
}

func parseList(out string) map[string]bool {
	names := map[string]bool{}
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch {
		case strings.EqualFold(fields[0], "PACKAGE"), fields[0] == "Installed", strings.HasPrefix(fields[0], "("):
			continue
		}
		names[strings.ToLower(fields[0])] = true
	}
	return names
}

// MainConfigPath returns the php.ini loaded by the linked runtime.
func (m *Manager) MainConfigPath() (string, error) {
	out, err := m.runner.RunAsUser("php", "--ini")
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(out, "\n") {
		value, ok := strings.CutPrefix(strings.TrimSpace(line), loadedConfigKey)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" || value == noneConfigMarker {
			break
		}
		return value, nil
	}
	return "", fmt.Errorf(messages.PeclNoLoadedIni)
}

// ExtensionAPIVersion returns the extension API number for v.
func (m *Manager) ExtensionAPIVersion(v php.Version) (string, error) {
	return php.APINumber(v)
}
