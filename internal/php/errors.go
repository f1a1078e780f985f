package php

import (
	"fmt"

	"github.com/conn-castle/valet-php/internal/messages"
)

// UnsupportedVersionError reports a requested version outside the supported set.
type UnsupportedVersionError struct {
	Requested string
	Supported []Version
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf(messages.PHPUnsupportedVersionFmt, e.Requested, Join(e.Supported))
}

// ConfigNotFoundError reports a version with no known pool configuration path.
type ConfigNotFoundError struct {
	Version Version
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf(messages.PHPConfigNotFoundFmt, e.Version)
}
