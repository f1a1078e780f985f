package repair

import (
	"fmt"
	"slices"

	"github.com/conn-castle/valet-php/internal/doctor"
	"github.com/conn-castle/valet-php/internal/extension"
	"github.com/conn-castle/valet-php/internal/messages"
)

var checklistExtensions = []string{"intl", "mcrypt", "apcu"}

// CheckInstallation evaluates the legacy-installation checklist. Each item is
// reported as a result; ErrInstallationDrift is returned when every item holds.
func (s *Service) CheckInstallation() ([]doctor.Result, error) {
	s.console.Info(messages.RepairCheckingInstallation)

	installed, err := s.brew.ListInstalled()
	if err != nil {
		return nil, err
	}

	var results []doctor.Result
	satisfied := true
	record := func(item string, present bool) {
		if !present {
			satisfied = false
			results = append(results, doctor.Result{
				Status:    doctor.StatusOK,
				CheckName: messages.DoctorCheckNameLegacy,
				Message:   fmt.Sprintf(messages.RepairItemAbsentFmt, item),
			})
			return
		}
		results = append(results, doctor.Result{
			Status:    doctor.StatusWarn,
			CheckName: messages.DoctorCheckNameLegacy,
			Message:   fmt.Sprintf(messages.RepairItemPresentFmt, item),
		})
	}

	for _, formula := range append(append([]string(nil), legacyFormulae...), deprecatedTools...) {
		record(formula, slices.Contains(installed, formula))
	}
	for _, v := range deprecatedVersions {
		dir := s.versionDir(v)
		for _, ext := range checklistExtensions {
			path := extension.MarkerPath(dir, ext, extension.StateEnabled)
			record(path, s.files.Exists(path))
		}
	}
	tapped, err := s.brew.HasTap(DeprecatedTap)
	if err != nil {
		return nil, err
	}
	record(fmt.Sprintf(messages.RepairTapItemFmt, DeprecatedTap), tapped)

	if satisfied {
		return results, ErrInstallationDrift
	}
	return results, nil
}
