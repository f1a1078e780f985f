package messages

// System messages for process, filesystem and package-manager plumbing.
const (
	ShellCommandFailedFmt       = "command %q failed: %v"
	ShellCommandFailedOutputFmt = "command %q failed: %v\n%s"

	FilesMoveFmt       = "failed to move %s to %s: %w"
	FilesCreateDirFmt  = "failed to create directory %s: %w"
	FilesLookupUserFmt = "failed to look up user %s: %w"
	FilesChownFmt      = "failed to chown %s to %s: %w"

	BrewNoLinkedPHPFmt      = "unable to determine linked PHP from %s: %w"
	BrewUnrecognizedLinkFmt = "unable to determine linked PHP: %s points to %s"

	PeclInstallFailedFmt = "failed to install %s for php %s: %w"
	PeclNoLoadedIni      = "php --ini reports no loaded php.ini"

	// FsutilCreateTempFileFmt formats temp file creation errors.
	FsutilCreateTempFileFmt  = "create temp file for %s: %w"
	FsutilSetPermissionsFmt  = "set permissions for %s: %w"
	FsutilWriteTempFileFmt   = "write temp file for %s: %w"
	FsutilSyncTempFileFmt    = "sync temp file for %s: %w"
	FsutilCloseTempFileFmt   = "close temp file for %s: %w"
	FsutilPrepareTempFileFmt = "prepare temp file for %s: %w"
	FsutilRenameTempFileFmt  = "rename temp file for %s: %w"
	FsutilOpenDirFmt         = "open dir %s: %w"
	FsutilSyncDirFmt         = "sync dir %s: %w"
)
