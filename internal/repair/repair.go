// Package repair removes leftovers of the retired homebrew/php tap and
// relinks a known-good PHP runtime.
package repair

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/conn-castle/valet-php/internal/console"
	"github.com/conn-castle/valet-php/internal/extension"
	"github.com/conn-castle/valet-php/internal/logging"
	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/php"
)

const subsystem = "Repair"

// DeprecatedTap is the retired tap that shipped the old phpXY formulae.
const DeprecatedTap = "homebrew/php"

// ErrInstallationDrift reports the diagnostic checklist outcome that calls for a repair.
var ErrInstallationDrift = errors.New(messages.RepairDriftDetected)

var (
	deprecatedPrefixes  = []string{"php56-", "php70-", "php71-", "php72-"}
	deprecatedTools     = []string{"n98-magerun", "n98-magerun2", "drush"}
	deprecatedVersions  = []php.Version{php.V56, php.V70, php.V71, php.V72}
	unmanagedExtensions = []string{"apcu", "intl", "mcrypt"}
	legacyFormulae      = []string{"php56", "php70", "php71", "php72"}
)

// PackageManager is the Homebrew surface repair needs.
type PackageManager interface {
	ListInstalled() ([]string, error)
	Installed(formula string) (bool, error)
	Install(formula string) error
	Uninstall(formula string) error
	Unlink(formula string) error
	Link(formula string, force bool) error
	HasTap(name string) (bool, error)
	RemoveTap(name string) error
}

// Runner captures command output.
type Runner interface {
	RunAsUser(name string, args ...string) (string, error)
}

// Service runs the repair and its companion diagnostic.
type Service struct {
	brew    PackageManager
	runner  Runner
	files   extension.FileStore
	toggle  *extension.Toggle
	prefix  string
	console *console.Console
}

// New returns a Service for the Homebrew installation under prefix.
func New(brew PackageManager, runner Runner, files extension.FileStore, prefix string, c *console.Console) *Service {
	return &Service{
		brew:    brew,
		runner:  runner,
		files:   files,
		toggle:  extension.NewToggle(files),
		prefix:  prefix,
		console: c,
	}
}

// Fix removes deprecated packages, disables unmanaged extensions and relinks the
// canonical runtime. Every step is safe to repeat. reinstall also removes the
// legacy phpXY formulae.
func (s *Service) Fix(reinstall bool) error {
	for _, prefix := range deprecatedPrefixes {
		s.console.Info(messages.RepairRemovingPrefixFmt, prefix, DeprecatedTap)
		if err := s.uninstallMatching(func(name string) bool { return strings.HasPrefix(name, prefix) }); err != nil {
			return err
		}
	}

	s.console.Info(messages.RepairRemovingToolsFmt, strings.Join(deprecatedTools, ", "), DeprecatedTap)
	if err := s.uninstallMatching(isDeprecatedTool); err != nil {
		return err
	}

	for _, v := range deprecatedVersions {
		s.console.Info(messages.RepairDisablingModulesFmt, v, strings.Join(unmanagedExtensions, ", "))
		dir := s.versionDir(v)
		for _, ext := range unmanagedExtensions {
			if s.toggle.State(dir, ext) != extension.StateEnabled {
				continue
			}
			if _, err := s.toggle.Disable(dir, ext); err != nil {
				return err
			}
		}
	}

	if reinstall {
		for _, formula := range legacyFormulae {
			s.console.Info(messages.RepairRemovingFormulaFmt, formula)
			if err := s.brew.Uninstall(formula); err != nil {
				return err
			}
		}
	}

	canonical := php.Formula(php.Canonical)
	s.console.Info(messages.RepairRelinkingFmt, canonical)
	if err := s.brew.Uninstall(canonical); err != nil {
		return err
	}
	if err := s.brew.Install(canonical); err != nil {
		return err
	}
	if err := s.brew.Unlink(canonical); err != nil {
		return err
	}
	if err := s.brew.Link(canonical, true); err != nil {
		return err
	}

	tapped, err := s.brew.HasTap(DeprecatedTap)
	if err != nil {
		return err
	}
	if tapped {
		s.console.Info(messages.RepairUntappingFmt, DeprecatedTap)
		if err := s.brew.RemoveTap(DeprecatedTap); err != nil {
			return err
		}
	}

	s.console.Warning(messages.RepairCheckLinkedFmt, php.Canonical)
	out, err := s.runner.RunAsUser("php", "-v")
	if err != nil {
		return err
	}
	s.console.Output(out)
	return nil
}

func (s *Service) uninstallMatching(match func(string) bool) error {
	installed, err := s.brew.ListInstalled()
	if err != nil {
		return err
	}
	for _, name := range installed {
		if !match(name) {
			continue
		}
		logging.Debug(subsystem, "uninstalling deprecated package %s", name)
		if err := s.brew.Uninstall(name); err != nil {
			return err
		}
	}
	return nil
}

func isDeprecatedTool(name string) bool {
	for _, tool := range deprecatedTools {
		if name == tool {
			return true
		}
	}
	return false
}

func (s *Service) versionDir(v php.Version) string {
	return filepath.Join(s.prefix, "etc", "php", string(v))
}
