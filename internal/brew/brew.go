// Package brew drives Homebrew as the package manager for PHP runtimes.
package brew

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/conn-castle/valet-php/internal/logging"
	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/php"
)

// Runner executes external commands.
type Runner interface {
	RunAsUser(name string, args ...string) (string, error)
	Passthrough(name string, args ...string) error
}

// System abstracts the filesystem lookups Homebrew state is derived from.
type System interface {
	Readlink(path string) (string, error)
}

// Homebrew implements package-manager operations with the brew CLI.
type Homebrew struct {
	runner Runner
	sys    System
	prefix string
}

// New returns a Homebrew client rooted at prefix (e.g. /usr/local).
func New(runner Runner, sys System, prefix string) *Homebrew {
	return &Homebrew{runner: runner, sys: sys, prefix: prefix}
}

// ListInstalled returns the installed formula names.
func (b *Homebrew) ListInstalled() ([]string, error) {
	out, err := b.runner.RunAsUser("brew", "list", "--formula", "-1")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

// Installed reports whether formula is installed.
func (b *Homebrew) Installed(formula string) (bool, error) {
	installed, err := b.ListInstalled()
	if err != nil {
		return false, err
	}
	return slices.Contains(installed, formula), nil
}

// IsAnyInstalled reports whether any supported PHP formula is installed.
func (b *Homebrew) IsAnyInstalled() (bool, error) {
	installed, err := b.ListInstalled()
	if err != nil {
		return false, err
	}
	for _, formula := range php.Formulae() {
		if slices.Contains(installed, formula) {
			return true, nil
		}
	}
	return false, nil
}

// LinkedVersion resolves the PHP version behind the linked php binary.
func (b *Homebrew) LinkedVersion() (php.Version, error) {
	_, v, err := b.linked()
	return v, err
}

// LinkedFormula returns the formula that owns the linked php binary. This is
// either a versioned formula such as php@7.1 or the unversioned php formula.
func (b *Homebrew) LinkedFormula() (string, error) {
	formula, _, err := b.linked()
	return formula, err
}

func (b *Homebrew) linked() (string, php.Version, error) {
	link := filepath.Join(b.prefix, "bin", "php")
	target, err := b.sys.Readlink(link)
	if err != nil {
		return "", "", fmt.Errorf(messages.BrewNoLinkedPHPFmt, link, err)
	}
	formula, keg, ok := cellarEntry(target)
	if !ok {
		return "", "", fmt.Errorf(messages.BrewUnrecognizedLinkFmt, link, target)
	}
	v, ok := php.FromFormula(formula, keg)
	if !ok {
		return "", "", fmt.Errorf(messages.BrewUnrecognizedLinkFmt, link, target)
	}
	return formula, v, nil
}

// cellarEntry extracts the formula and keg version from a path through the Cellar,
// e.g. ../Cellar/php@7.1/7.1.33/bin/php.
func cellarEntry(target string) (string, string, bool) {
	parts := strings.Split(filepath.ToSlash(target), "/")
	for i, part := range parts {
		if part != "Cellar" || i+2 >= len(parts) {
			continue
		}
		return parts[i+1], parts[i+2], true
	}
	return "", "", false
}

// EnsureInstalled installs formula unless it is already installed.
func (b *Homebrew) EnsureInstalled(formula string) error {
	installed, err := b.Installed(formula)
	if err != nil {
		return err
	}
	if installed {
		return nil
	}
	return b.Install(formula)
}

// Install installs formula with brew output streamed to the terminal.
func (b *Homebrew) Install(formula string) error {
	logging.Info("Brew", "installing %s", formula)
	return b.runner.Passthrough("brew", "install", formula)
}

// Uninstall removes formula. A formula that is not installed is left alone.
func (b *Homebrew) Uninstall(formula string) error {
	installed, err := b.Installed(formula)
	if err != nil {
		return err
	}
	if !installed {
		logging.Debug("Brew", "%s is not installed; nothing to uninstall", formula)
		return nil
	}
	_, err = b.runner.RunAsUser("brew", "uninstall", formula)
	return err
}

// Unlink removes formula's symlinks from the prefix.
func (b *Homebrew) Unlink(formula string) error {
	_, err := b.runner.RunAsUser("brew", "unlink", formula)
	return err
}

// Link links formula into the prefix. force also links keg-only formulae and overwrites conflicts.
func (b *Homebrew) Link(formula string, force bool) error {
	args := []string{"link", formula}
	if force {
		args = append(args, "--force", "--overwrite")
	}
	_, err := b.runner.RunAsUser("brew", args...)
	return err
}

// StopServices stops the brew services of every installed formula in formulae.
func (b *Homebrew) StopServices(formulae ...string) error {
	installed, err := b.ListInstalled()
	if err != nil {
		return err
	}
	for _, formula := range formulae {
		if !slices.Contains(installed, formula) {
			continue
		}
		if err := b.runner.Passthrough("sudo", "brew", "services", "stop", formula); err != nil {
			return err
		}
	}
	return nil
}

// RestartService restarts the brew service for formula as root.
func (b *Homebrew) RestartService(formula string) error {
	return b.runner.Passthrough("sudo", "brew", "services", "restart", formula)
}

// HasTap reports whether the tap is configured.
func (b *Homebrew) HasTap(name string) (bool, error) {
	out, err := b.runner.RunAsUser("brew", "tap")
	if err != nil {
		return false, err
	}
	return slices.Contains(strings.Fields(out), name), nil
}

// RemoveTap untaps a repository.
func (b *Homebrew) RemoveTap(name string) error {
	_, err := b.runner.RunAsUser("brew", "untap", name)
	return err
}
