package fpmconf

import (
	"path/filepath"
	"strings"
)

const (
	// ProfileFileName is the performance profile written into conf.d.
	ProfileFileName = "z-performance.ini"
	// TimezonePlaceholder is replaced with the host zone name when rendering the profile.
	TimezonePlaceholder = "TIMEZONE"

	poolDirName  = "php-fpm.d"
	extraDirName = "conf.d"
)

// RenderProfile substitutes the host zone into the profile template.
func RenderProfile(template string, zone string) string {
	return strings.ReplaceAll(template, TimezonePlaceholder, zone)
}

// ExtraConfigDir derives a version's conf.d directory from its pool configuration path.
func ExtraConfigDir(poolConfigPath string) string {
	dir := filepath.Dir(poolConfigPath)
	if filepath.Base(dir) == poolDirName {
		dir = filepath.Dir(dir)
	}
	return filepath.Join(dir, extraDirName)
}

// ProfilePath returns the performance profile path for a pool configuration path.
func ProfilePath(poolConfigPath string) string {
	return filepath.Join(ExtraConfigDir(poolConfigPath), ProfileFileName)
}
