package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/php"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			if err := a.fpm.Install(); err != nil {
				return err
			}
			a.console.Info(messages.InstallDone)
			return nil
		},
	}
}

func newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:       messages.UseUse,
		Short:     messages.UseShort,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: versionStrings(),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			version, err := requestedVersion(a, args)
			if err != nil {
				return err
			}
			return a.fpm.SwitchTo(version)
		},
	}
}

// requestedVersion returns the version argument, prompting for one in a terminal.
func requestedVersion(a *app, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if !a.interactive() {
		return "", fmt.Errorf(messages.UseVersionRequiredFmt, php.Join(php.Supported()))
	}
	choice := string(php.Canonical)
	if linked, err := a.packages.LinkedVersion(); err == nil {
		choice = string(linked)
	}
	if err := a.ui.Select(messages.UseSelectTitle, versionStrings(), &choice); err != nil {
		return "", err
	}
	return choice, nil
}

func versionStrings() []string {
	supported := php.Supported()
	out := make([]string, 0, len(supported))
	for _, v := range supported {
		out = append(out, string(v))
	}
	return out
}

func newRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.RestartUse,
		Short: messages.RestartShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			return a.fpm.Restart()
		},
	}
}

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.StopUse,
		Short: messages.StopShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			return a.fpm.Stop()
		},
	}
}
