package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/valet-php/internal/fpmconf"
	"github.com/conn-castle/valet-php/internal/messages"
)

func newReconcileCmd() *cobra.Command {
	var dryRun bool
	var diffLines int
	cmd := &cobra.Command{
		Use:   messages.ReconcileUse,
		Short: messages.ReconcileShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			v, err := a.packages.LinkedVersion()
			if err != nil {
				return err
			}
			if !dryRun {
				if err := a.reconciler.Reconcile(v); err != nil {
					return err
				}
				a.console.Info(messages.ReconcileDoneFmt, v)
				return nil
			}

			previews, err := a.reconciler.Preview(v, diffLines)
			if err != nil {
				return err
			}
			if len(previews) == 0 {
				a.console.Info(messages.ReconcileNoChangesFmt, v)
				return nil
			}
			for _, p := range previews {
				_, _ = fmt.Fprintln(a.out, color.CyanString(messages.ReconcilePreviewHeaderFmt, p.Path))
				a.console.Output(p.UnifiedDiff)
			}
			a.console.Warning(messages.ReconcileDryRunFmt, len(previews))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.ReconcileFlagDryRun)
	cmd.Flags().IntVar(&diffLines, "diff-lines", fpmconf.DefaultDiffMaxLines, messages.ReconcileFlagDiffLines)
	return cmd
}
