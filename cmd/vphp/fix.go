package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/conn-castle/valet-php/internal/messages"
)

func newFixCmd() *cobra.Command {
	var reinstall, yes bool
	cmd := &cobra.Command{
		Use:   messages.FixUse,
		Short: messages.FixShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			if reinstall && !yes {
				if !a.interactive() {
					return errors.New(messages.FixReinstallRequiresYes)
				}
				confirmed := false
				if err := a.ui.Confirm(messages.FixReinstallPrompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					a.console.Warning(messages.FixAborted)
					return nil
				}
			}
			return a.repair.Fix(reinstall)
		},
	}
	cmd.Flags().BoolVar(&reinstall, "reinstall", false, messages.FixFlagReinstall)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, messages.FixFlagYes)
	return cmd
}
