package config

import "path/filepath"

// TimezoneLink is the system symlink the host timezone is read from.
const TimezoneLink = "/etc/localtime"

// Paths holds the resolved locations vphp reads and writes.
type Paths struct {
	Socket     string
	ErrorLog   string
	LogDir     string
	CellarRoot string
	EtcRoot    string
	PHPBinary  string
	Timezone   string
}

// Paths derives every location from the configured home and brew prefix.
func (c *Config) Paths() Paths {
	return Paths{
		Socket:     filepath.Join(c.Home, "valet.sock"),
		ErrorLog:   filepath.Join(c.Home, "Log", "php.log"),
		LogDir:     filepath.Join(c.BrewPrefix, "var", "log"),
		CellarRoot: filepath.Join(c.BrewPrefix, "Cellar"),
		EtcRoot:    filepath.Join(c.BrewPrefix, "etc", "php"),
		PHPBinary:  filepath.Join(c.BrewPrefix, "bin", "php"),
		Timezone:   TimezoneLink,
	}
}
