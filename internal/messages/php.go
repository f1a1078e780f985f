package messages

// PHP runtime messages: version table, switching, configuration and repair.
const (
	PHPUnsupportedVersionFmt = "This version of PHP (%s) is not available. The following versions are available: %s"
	PHPConfigNotFoundFmt     = "no FPM pool configuration is known for php %s"
	PHPUnknownAPINumberFmt   = "no extension API number is known for php %s"

	FPMAlreadyOnVersion       = "Already on this version"
	FPMUnlinkingFmt           = "[php@%s] Unlinking"
	FPMRelinkingLibjpeg       = "[libjpeg] Relinking"
	FPMRelinkLibjpegFailedFmt = "[libjpeg] Relink failed, continuing: %v"
	FPMLinkingFmt             = "[php@%s] Linking"
	FPMNowUsingFmt            = "Valet is now using %s"

	FpmconfReadPoolFmt      = "failed to read pool configuration %s: %w"
	FpmconfReadTimezoneFmt  = "failed to read timezone link %s: %w"
	FpmconfReadProfileFmt   = "failed to read %s: %w"
	FpmconfResolveIniFmt    = "failed to resolve php.ini: %w"
	FpmconfReadIniFmt       = "failed to read php.ini %s: %w"
	FpmconfReadCellarFmt    = "failed to list %s: %w"
	FpmconfNoKegFmt         = "no installed keg under %s"
	FpmconfEnsureDirFmt     = "failed to create %s: %w"
	FpmconfWriteFmt         = "failed to write %s: %w"
	FpmconfRollbackFmt      = "failed to restore %s: %w"
	FpmconfDiffTruncatedFmt = "... diff truncated to %d lines"

	ExtensionMarkerMissing      = "extension ini not found"
	ExtensionAlreadyEnabledFmt  = "%s was already enabled."
	ExtensionEnabledFmt         = "Enabled %s"
	ExtensionAlreadyDisabledFmt = "%s was already disabled."
	ExtensionDisabledFmt        = "Disabled %s"
	ExtensionStatusFmt          = "%s is %s."
	ExtensionProfileMissingFmt  = "Cannot find %s, please run vphp install"
	ExtensionReadProfileFmt     = "failed to read %s: %w"
	ExtensionWriteProfileFmt    = "failed to write %s: %w"
	ExtensionAutostartEnabled   = "xdebug.remote_autostart is now enabled."
	ExtensionAutostartDisabled  = "xdebug.remote_autostart is now disabled."

	RepairRemovingPrefixFmt    = "Removing all old %s packages from %s tap"
	RepairRemovingToolsFmt     = "Removing %s packages from %s tap"
	RepairDisablingModulesFmt  = "[php%s] Disabling modules: %s"
	RepairRemovingFormulaFmt   = "Trying to remove %s..."
	RepairRelinkingFmt         = "Installing and linking %s."
	RepairUntappingFmt         = "[brew] untapping formulae %s"
	RepairCheckLinkedFmt       = "Please check your linked php version, you might need to restart your terminal!\nLinked PHP should be php %s:"
	RepairCheckingInstallation = "[php] Checking for errors within the php installation..."
	RepairDriftDetected        = "[php] found errors within the installation; run `vphp fix` to try and resolve them"
	RepairItemPresentFmt       = "%s present"
	RepairItemAbsentFmt        = "%s absent"
	RepairTapItemFmt           = "tap %s"
)
