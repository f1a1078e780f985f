// Package fpm sequences Homebrew and reconciler calls to install, switch,
// restart and stop the PHP-FPM runtime.
package fpm

import (
	"github.com/conn-castle/valet-php/internal/console"
	"github.com/conn-castle/valet-php/internal/logging"
	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/php"
)

const subsystem = "FPM"

// libjpegRelink restores the libjpeg 8 symlink some older extensions were built against.
var libjpegRelink = []string{"ln", "-fs", "/usr/local/Cellar/jpeg/8d/lib/libjpeg.8.dylib", "/usr/local/opt/jpeg/lib/libjpeg.8.dylib"}

// PackageManager is the Homebrew surface the controller drives.
type PackageManager interface {
	IsAnyInstalled() (bool, error)
	LinkedVersion() (php.Version, error)
	LinkedFormula() (string, error)
	EnsureInstalled(formula string) error
	Installed(formula string) (bool, error)
	Install(formula string) error
	Unlink(formula string) error
	Link(formula string, force bool) error
	StopServices(formulae ...string) error
	RestartService(formula string) error
}

// Runner executes interactive commands.
type Runner interface {
	Passthrough(name string, args ...string) error
}

// Reconciler rewrites a version's configuration.
type Reconciler interface {
	Reconcile(v php.Version) error
}

// Extensions installs the managed PECL extensions.
type Extensions interface {
	RefreshChannel() error
	InstallExtensions(v php.Version) error
}

// FileStore creates directories owned by the operating user.
type FileStore interface {
	EnsureDirExists(path string, owner string) error
}

// Settings holds the fixed inputs of the install flow.
type Settings struct {
	DefaultVersion php.Version
	LogDir         string
	User           string
}

// Service is the version switch controller.
type Service struct {
	settings   Settings
	brew       PackageManager
	runner     Runner
	reconciler Reconciler
	extensions Extensions
	files      FileStore
	console    *console.Console
}

// Deps groups the collaborators of a Service.
type Deps struct {
	Brew       PackageManager
	Runner     Runner
	Reconciler Reconciler
	Extensions Extensions
	Files      FileStore
	Console    *console.Console
}

// New returns a Service.
func New(settings Settings, deps Deps) *Service {
	return &Service{
		settings:   settings,
		brew:       deps.Brew,
		runner:     deps.Runner,
		reconciler: deps.Reconciler,
		extensions: deps.Extensions,
		files:      deps.Files,
		console:    deps.Console,
	}
}

// Install makes sure a runtime is present, then configures and restarts the linked one.
func (s *Service) Install() error {
	present, err := s.brew.IsAnyInstalled()
	if err != nil {
		return err
	}
	if !present {
		if err := s.brew.EnsureInstalled(php.Formula(s.settings.DefaultVersion)); err != nil {
			return err
		}
	}

	v, err := s.brew.LinkedVersion()
	if err != nil {
		return err
	}
	logging.Debug(subsystem, "installing configuration for php %s", v)

	if err := s.files.EnsureDirExists(s.settings.LogDir, s.settings.User); err != nil {
		return err
	}
	if err := s.reconciler.Reconcile(v); err != nil {
		return err
	}
	if err := s.extensions.RefreshChannel(); err != nil {
		return err
	}
	if err := s.extensions.InstallExtensions(v); err != nil {
		return err
	}
	return s.Restart()
}

// Restart restarts the service of the linked runtime.
func (s *Service) Restart() error {
	formula, err := s.brew.LinkedFormula()
	if err != nil {
		return err
	}
	return s.brew.RestartService(formula)
}

// Stop stops the services of every supported runtime, including the unversioned formula.
func (s *Service) Stop() error {
	return s.brew.StopServices(php.Formulae()...)
}

// SwitchTo links the runtime for raw and reinstalls its configuration.
// Switching to the already linked version changes nothing.
func (s *Service) SwitchTo(raw string) error {
	current, err := s.brew.LinkedVersion()
	if err != nil {
		return err
	}
	target, err := php.Parse(raw)
	if err != nil {
		return err
	}
	if current == target {
		s.console.Info(messages.FPMAlreadyOnVersion)
		return nil
	}
	formula := php.Formula(target)

	linked, err := s.brew.LinkedFormula()
	if err != nil {
		return err
	}
	s.console.Info(messages.FPMUnlinkingFmt, current)
	if err := s.brew.Unlink(linked); err != nil {
		return err
	}

	s.console.Info(messages.FPMRelinkingLibjpeg)
	if err := s.runner.Passthrough("sudo", libjpegRelink...); err != nil {
		logging.Warn(subsystem, "libjpeg relink failed: %v", err)
		s.console.Warning(messages.FPMRelinkLibjpegFailedFmt, err)
	}

	installed, err := s.brew.Installed(formula)
	if err != nil {
		return err
	}
	if !installed {
		if err := s.brew.Install(formula); err != nil {
			return err
		}
		if installed, err = s.brew.Installed(formula); err != nil {
			return err
		}
	}
	if installed {
		s.console.Info(messages.FPMLinkingFmt, target)
		if err := s.brew.Unlink(formula); err != nil {
			return err
		}
		if err := s.brew.Link(formula, true); err != nil {
			return err
		}
	} else {
		logging.Warn(subsystem, "%s still not installed after install; skipping link", formula)
	}

	if err := s.Stop(); err != nil {
		return err
	}
	if err := s.Install(); err != nil {
		return err
	}

	s.console.Info(messages.FPMNowUsingFmt, formula)
	return nil
}
