// Package php holds the closed set of PHP release lines this tool manages and
// the static facts known about each of them.
package php

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conn-castle/valet-php/internal/messages"
)

// Version identifies a PHP release line such as "7.1".
type Version string

// Supported release lines.
const (
	V56 Version = "5.6"
	V70 Version = "7.0"
	V71 Version = "7.1"
	V72 Version = "7.2"
	V73 Version = "7.3"
)

// Canonical is the release line the repair flow re-installs as a known-good baseline.
const Canonical = V71

// UnversionedFormula is Homebrew's rolling php formula. It tracks whichever
// release line is current, so its version comes from the installed keg.
const UnversionedFormula = "php"

// Release describes one supported release line.
type Release struct {
	Version Version
	// Formula is the Homebrew formula name.
	Formula string
	// PoolConfig is the FPM pool configuration file, relative to the Homebrew prefix.
	PoolConfig string
	// APINumber is the PHP extension API number used in the PECL extension directory.
	APINumber string
}

// releases is ordered oldest first; Supported preserves this order.
var releases = []Release{
	{Version: V56, Formula: "php@5.6", PoolConfig: "etc/php/5.6/php-fpm.conf", APINumber: "20131226"},
	{Version: V70, Formula: "php@7.0", PoolConfig: "etc/php/7.0/php-fpm.d/www.conf", APINumber: "20151012"},
	{Version: V71, Formula: "php@7.1", PoolConfig: "etc/php/7.1/php-fpm.d/www.conf", APINumber: "20160303"},
	{Version: V72, Formula: "php@7.2", PoolConfig: "etc/php/7.2/php-fpm.d/www.conf", APINumber: "20170718"},
	{Version: V73, Formula: "php@7.3", PoolConfig: "etc/php/7.3/php-fpm.d/www.conf", APINumber: "20180731"},
}

var releaseByVersion = func() map[Version]Release {
	index := make(map[Version]Release, len(releases))
	for _, r := range releases {
		index[r.Version] = r
	}
	return index
}()

// Supported returns the supported versions, oldest first.
func Supported() []Version {
	out := make([]Version, 0, len(releases))
	for _, r := range releases {
		out = append(out, r.Version)
	}
	return out
}

// Formulae returns the Homebrew formula names of every supported version,
// followed by the unversioned formula.
func Formulae() []string {
	out := make([]string, 0, len(releases)+1)
	for _, r := range releases {
		out = append(out, r.Formula)
	}
	return append(out, UnversionedFormula)
}

// Lookup returns the release facts for v.
func Lookup(v Version) (Release, bool) {
	r, ok := releaseByVersion[v]
	return r, ok
}

// IsSupported reports whether v is a member of the supported set.
func IsSupported(v Version) bool {
	_, ok := releaseByVersion[v]
	return ok
}

// Parse validates a user-supplied version string against the supported set.
func Parse(raw string) (Version, error) {
	v := Version(strings.TrimSpace(raw))
	if !IsSupported(v) {
		return "", &UnsupportedVersionError{Requested: string(v), Supported: Supported()}
	}
	return v, nil
}

// Formula returns the Homebrew formula for v. Versions outside the table fall
// back to the versioned formula naming scheme so a stray linked keg can still
// be unlinked.
func Formula(v Version) string {
	if r, ok := releaseByVersion[v]; ok {
		return r.Formula
	}
	return "php@" + string(v)
}

// FromFormula maps a Homebrew formula and keg version to a release line.
// The unversioned "php" formula resolves through its keg version.
func FromFormula(formula string, kegVersion string) (Version, bool) {
	if rest, ok := strings.CutPrefix(formula, "php@"); ok {
		if rest == "" {
			return "", false
		}
		return Version(rest), true
	}
	if formula != UnversionedFormula {
		return "", false
	}
	parts := strings.SplitN(kegVersion, ".", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	return Version(parts[0] + "." + parts[1]), true
}

// PoolConfigPath resolves the absolute FPM pool configuration path for v under prefix.
func PoolConfigPath(prefix string, v Version) (string, error) {
	r, ok := releaseByVersion[v]
	if !ok {
		return "", &ConfigNotFoundError{Version: v}
	}
	return filepath.Join(prefix, filepath.FromSlash(r.PoolConfig)), nil
}

// APINumber returns the extension API number for v.
func APINumber(v Version) (string, error) {
	r, ok := releaseByVersion[v]
	if !ok {
		return "", fmt.Errorf(messages.PHPUnknownAPINumberFmt, v)
	}
	return r.APINumber, nil
}

// Join renders versions separated by spaces.
func Join(versions []Version) string {
	parts := make([]string, 0, len(versions))
	for _, v := range versions {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, " ")
}
