// Package doctor inspects the PHP-FPM installation and reports findings as
// status lines.
package doctor

import (
	"fmt"

	"github.com/conn-castle/valet-php/internal/fpmconf"
	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/php"
)

// VersionSource reports the linked runtime version and the formula that owns it.
type VersionSource interface {
	LinkedVersion() (php.Version, error)
	LinkedFormula() (string, error)
}

// FileChecker reports file existence.
type FileChecker interface {
	Exists(path string) bool
}

// Planner computes pending configuration rewrites.
type Planner interface {
	Plan(v php.Version) (fpmconf.Plan, error)
}

// CheckConfig reports the outcome of loading the tool configuration.
func CheckConfig(path string, loadErr error) Result {
	if loadErr != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, loadErr),
			Recommendation: fmt.Sprintf(messages.DoctorConfigLoadRecommendFmt, path),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, path),
	}
}

// CheckLinked resolves the linked version. The version is empty when the check fails.
func CheckLinked(source VersionSource) (Result, php.Version) {
	v, err := source.LinkedVersion()
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameLinked,
			Message:        fmt.Sprintf(messages.DoctorLinkedFailedFmt, err),
			Recommendation: messages.DoctorLinkedRecommend,
		}, ""
	}
	if !php.IsSupported(v) {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameLinked,
			Message:        fmt.Sprintf(messages.DoctorLinkedUnsupportedFmt, v, php.Join(php.Supported())),
			Recommendation: messages.DoctorLinkedRecommend,
		}, ""
	}
	formula, err := source.LinkedFormula()
	if err != nil {
		formula = php.Formula(v)
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameLinked,
		Message:   fmt.Sprintf(messages.DoctorLinkedFmt, v, formula),
	}, v
}

// CheckFiles verifies that the pool configuration and performance profile of v exist.
func CheckFiles(files FileChecker, prefix string, v php.Version) []Result {
	pool, err := php.PoolConfigPath(prefix, v)
	if err != nil {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameFiles,
			Message:   err.Error(),
		}}
	}
	var results []Result
	for _, path := range []string{pool, fpmconf.ProfilePath(pool)} {
		if !files.Exists(path) {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameFiles,
				Message:        fmt.Sprintf(messages.DoctorFileMissingFmt, path),
				Recommendation: messages.DoctorRunInstallRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameFiles,
			Message:   fmt.Sprintf(messages.DoctorFileExistsFmt, path),
		})
	}
	return results
}

// CheckReconciled warns when reconciling v would still change files on disk.
func CheckReconciled(planner Planner, v php.Version) Result {
	plan, err := planner.Plan(v)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameReconcile,
			Message:        fmt.Sprintf(messages.DoctorPlanFailedFmt, err),
			Recommendation: messages.DoctorRunInstallRecommend,
		}
	}
	var pending []string
	for _, change := range plan.Changes {
		if change.Changed() {
			pending = append(pending, change.Path)
		}
	}
	if len(pending) > 0 {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameReconcile,
			Message:        fmt.Sprintf(messages.DoctorPendingChangesFmt, len(pending), v),
			Recommendation: messages.DoctorReconcileRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameReconcile,
		Message:   fmt.Sprintf(messages.DoctorReconciledFmt, v),
	}
}
