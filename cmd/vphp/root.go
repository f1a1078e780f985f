package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/valet-php/internal/logging"
	"github.com/conn-castle/valet-php/internal/messages"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logging.LevelWarn
			if verbose {
				level = logging.LevelDebug
			}
			logging.Init(level, cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, messages.RootVerboseFlag)

	cmd.AddCommand(
		newInstallCmd(),
		newUseCmd(),
		newFixCmd(),
		newDoctorCmd(),
		newRestartCmd(),
		newStopCmd(),
		newReconcileCmd(),
		newVersionsCmd(),
		newExtCmd(),
		newAutostartCmd(),
		newConfigCmd(),
		newCompletionCmd(),
	)
	return cmd
}
