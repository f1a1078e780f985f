package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/valet-php/internal/doctor"
	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/repair"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppFunc(cmd)
			if err != nil {
				return err
			}
			out := a.out
			_, _ = fmt.Fprintln(out, messages.DoctorHeader)

			results := []doctor.Result{doctor.CheckConfig(a.cfgPath, a.cfgErr)}
			linked, v := doctor.CheckLinked(a.packages)
			results = append(results, linked)
			if v != "" {
				results = append(results, doctor.CheckFiles(a.files, a.cfg.BrewPrefix, v)...)
				results = append(results, doctor.CheckReconciled(a.reconciler, v))
			}

			legacy, err := a.repair.CheckInstallation()
			drift := errors.Is(err, repair.ErrInstallationDrift)
			if err != nil && !drift {
				return err
			}
			results = append(results, legacy...)

			for _, r := range results {
				printResult(out, r)
			}
			if drift {
				a.console.Warning("%s", err.Error())
			}

			if doctor.HasFailure(results) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
