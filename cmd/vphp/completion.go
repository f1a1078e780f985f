package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/valet-php/internal/messages"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       messages.CompletionUse,
		Short:     messages.CompletionShort,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return fmt.Errorf(messages.CompletionUnsupportedShellFmt, args[0])
			}
		},
	}
}
