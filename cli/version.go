package cli

import (
	"fmt"

	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if Version == "" {
				fmt.Fprintln(cmd.OutOrStdout(), term.Yellow("Version information not available"))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "assetkeeper version %s\n", Version)
			return nil
		},
	}
}
