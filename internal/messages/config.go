package messages

// Config messages for loading and validating config.toml.
const (
	ConfigValidationFailed      = "config validation failed"
	ConfigReadFileFmt           = "failed to read config %s: %w"
	ConfigFailedReadTemplateFmt = "failed to read template config: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt   = "config %s contains unrecognized keys: %v"
	ConfigExpandPathFmt         = "failed to expand path %s: %w"
	ConfigCurrentUserFmt        = "failed to determine the current user: %w"
	ConfigCreateDirFmt          = "failed to create config directory %s: %w"

	ConfigFieldRequiredFmt         = "%s: %s is required"
	ConfigListenModeInvalidFmt     = "%s: listen_mode %q must be 3 or 4 octal digits"
	ConfigDefaultVersionInvalidFmt = "%s: default_version %q is not supported (supported: %s)"
	ConfigExtensionEmptyFmt        = "%s: extensions.install must not contain empty names"
	ConfigUnknownKeyFmt            = "unknown config key %q (settable: %s)"
)
