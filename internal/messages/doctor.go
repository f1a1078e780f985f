package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse    = "doctor"
	DoctorShort  = "Check the PHP-FPM installation for problems"
	DoctorHeader = "🏥 Checking PHP-FPM health..."

	DoctorCheckNameConfig    = "Config"
	DoctorCheckNameLinked    = "Linked"
	DoctorCheckNameFiles     = "Files"
	DoctorCheckNameReconcile = "Reconcile"
	DoctorCheckNameLegacy    = "Legacy"

	DoctorConfigLoadFailedFmt    = "Failed to load configuration: %v"
	DoctorConfigLoadRecommendFmt = "Fix %s or remove it to fall back to the defaults."
	DoctorConfigLoadedFmt        = "Configuration loaded from %s"

	DoctorLinkedFmt            = "PHP %s is linked (%s)"
	DoctorLinkedFailedFmt      = "Unable to determine the linked PHP: %v"
	DoctorLinkedUnsupportedFmt = "Linked PHP %s is not supported (supported: %s)"
	DoctorLinkedRecommend      = "Run `vphp use <version>` to link a supported version."

	DoctorFileExistsFmt       = "Found %s"
	DoctorFileMissingFmt      = "Missing %s"
	DoctorRunInstallRecommend = "Run `vphp install` to write the configuration."

	DoctorReconciledFmt      = "Configuration for php %s matches the target state"
	DoctorPendingChangesFmt  = "%d file(s) differ from the target state for php %s"
	DoctorPlanFailedFmt      = "Failed to compute the target configuration: %v"
	DoctorReconcileRecommend = "Run `vphp reconcile --dry-run` to review, then `vphp reconcile`."

	DoctorFailureSummary = "❌ Some checks failed. Please address the items above."
	DoctorSuccessSummary = "✅ All checks passed."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "         "
)
