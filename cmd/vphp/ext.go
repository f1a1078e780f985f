package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/valet-php/internal/messages"
)

func newExtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ExtUse,
		Short: messages.ExtShort,
	}
	cmd.AddCommand(
		newExtActionCmd(messages.ExtEnableUse, messages.ExtEnableShort, func(a *app, ext string) error {
			_, err := a.extensions.Enable(ext)
			return err
		}),
		newExtActionCmd(messages.ExtDisableUse, messages.ExtDisableShort, func(a *app, ext string) error {
			_, err := a.extensions.Disable(ext)
			return err
		}),
		newExtActionCmd(messages.ExtStatusUse, messages.ExtStatusShort, func(a *app, ext string) error {
			_, err := a.extensions.Status(ext)
			return err
		}),
	)
	return cmd
}

func newExtActionCmd(use string, short string, action func(a *app, ext string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			return action(a, args[0])
		},
	}
}

func newAutostartCmd() *cobra.Command {
	return &cobra.Command{
		Use:       messages.AutostartUse,
		Short:     messages.AutostartShort,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			_, err = a.extensions.SetAutostart(args[0] == "on")
			return err
		},
	}
}
