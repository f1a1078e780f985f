// Package config loads the optional vphp TOML configuration and derives the
// paths the rest of the tool works with.
package config

import "github.com/conn-castle/valet-php/internal/php"

// Config is the parsed config.toml.
type Config struct {
	Home           string           `toml:"home"`
	BrewPrefix     string           `toml:"brew_prefix"`
	Group          string           `toml:"group"`
	ListenMode     string           `toml:"listen_mode"`
	DefaultVersion string           `toml:"default_version"`
	Extensions     ExtensionsConfig `toml:"extensions"`
}

// ExtensionsConfig lists the PECL extensions installed for every version.
type ExtensionsConfig struct {
	Install []string `toml:"install"`
}

// Version returns the configured default runtime version.
func (c *Config) Version() php.Version {
	return php.Version(c.DefaultVersion)
}
