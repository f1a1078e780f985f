package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse         = "vphp"
	RootShort       = "Install, configure and switch the PHP-FPM runtime behind Valet"
	RootVerboseFlag = "Log every command and file write to stderr"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	InstallUse   = "install"
	InstallShort = "Install PHP if needed, then configure and restart PHP-FPM"
	InstallDone  = "PHP-FPM installed and configured."

	UseUse                = "use [version]"
	UseShort              = "Switch the linked PHP version"
	UseSelectTitle        = "Which PHP version should be linked?"
	UseVersionRequiredFmt = "a version is required outside an interactive terminal (available: %s)"

	RestartUse   = "restart"
	RestartShort = "Restart the PHP-FPM service of the linked version"
	StopUse      = "stop"
	StopShort    = "Stop the PHP-FPM services of every supported version"

	FixUse                  = "fix"
	FixShort                = "Remove leftovers of the homebrew/php tap and relink PHP 7.1"
	FixFlagReinstall        = "Also uninstall the legacy php56, php70, php71 and php72 formulae"
	FixFlagYes              = "Do not ask for confirmation"
	FixReinstallPrompt      = "Uninstall every legacy PHP formula before relinking?"
	FixReinstallRequiresYes = "fix --reinstall needs confirmation; re-run with --yes outside an interactive terminal"
	FixAborted              = "Aborted; nothing was changed."

	ReconcileUse              = "reconcile"
	ReconcileShort            = "Rewrite the linked version's FPM pool, performance profile and php.ini"
	ReconcileFlagDryRun       = "Show the pending changes as diffs without writing"
	ReconcileFlagDiffLines    = "Maximum diff lines shown per file"
	ReconcileDoneFmt          = "Configuration for php %s is up to date."
	ReconcileNoChangesFmt     = "Configuration for php %s is already reconciled."
	ReconcilePreviewHeaderFmt = "--- %s"
	ReconcileDryRunFmt        = "Dry run: %d file(s) would change. Run without --dry-run to apply."

	VersionsUse             = "versions"
	VersionsShort           = "List the supported PHP versions"
	VersionsHeaderVersion   = "VERSION"
	VersionsHeaderFormula   = "FORMULA"
	VersionsHeaderAPI       = "API"
	VersionsHeaderInstalled = "INSTALLED"
	VersionsHeaderLinked    = "LINKED"
	VersionsYes             = "yes"
	VersionsNo              = "no"
	VersionsLinkedMarker    = "*"

	ExtUse          = "ext"
	ExtShort        = "Enable, disable or inspect a PHP extension of the linked version"
	ExtEnableUse    = "enable <extension>"
	ExtEnableShort  = "Enable an extension"
	ExtDisableUse   = "disable <extension>"
	ExtDisableShort = "Disable an extension"
	ExtStatusUse    = "status <extension>"
	ExtStatusShort  = "Report whether an extension is enabled"

	AutostartUse   = "autostart on|off"
	AutostartShort = "Toggle xdebug.remote_autostart in the performance profile"

	ConfigUse       = "config"
	ConfigShort     = "Manage the vphp configuration file"
	ConfigPathUse   = "path"
	ConfigPathShort = "Print the configuration file location"
	ConfigInitUse   = "init"
	ConfigInitShort = "Write the default configuration file"
	ConfigGetUse    = "get <key>"
	ConfigGetShort  = "Print the effective value of a top-level configuration key"
	ConfigSetUse    = "set <key> <value>"
	ConfigSetShort  = "Set a top-level configuration key"

	ConfigAlreadyExistsFmt = "%s already exists; leaving it untouched."
	ConfigWrittenFmt       = "Wrote %s"
	ConfigKeySetFmt        = "Set %s = %s"

	// CompletionUse is the completion command usage.
	CompletionUse                 = "completion [bash|zsh|fish]"
	CompletionShort               = "Generate shell completion scripts"
	CompletionUnsupportedShellFmt = "unsupported shell %q (supported: bash, zsh, fish)"

	PromptRequiresTerminal = "this prompt requires an interactive terminal"
	PromptCancelled        = "prompt cancelled"
)
