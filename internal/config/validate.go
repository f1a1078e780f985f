package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/php"
)

var listenModePattern = regexp.MustCompile(`^[0-7]{3,4}$`)

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(source string) error {
	if strings.TrimSpace(c.Home) == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "home")
	}
	if strings.TrimSpace(c.BrewPrefix) == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "brew_prefix")
	}
	if strings.TrimSpace(c.Group) == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "group")
	}
	if !listenModePattern.MatchString(c.ListenMode) {
		return fmt.Errorf(messages.ConfigListenModeInvalidFmt, source, c.ListenMode)
	}
	if !php.IsSupported(c.Version()) {
		return fmt.Errorf(messages.ConfigDefaultVersionInvalidFmt, source, c.DefaultVersion, php.Join(php.Supported()))
	}
	for _, ext := range c.Extensions.Install {
		if strings.TrimSpace(ext) == "" {
			return fmt.Errorf(messages.ConfigExtensionEmptyFmt, source)
		}
	}
	return nil
}
