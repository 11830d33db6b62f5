package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/assetkeeper/internal/store"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func storeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store <command>",
		Short: "Manage the persistent store",
		Example: heredoc.Doc(`
			$ assetkeeper store init
		`),
	}
	cmd.AddCommand(storeInitCommand(a))
	return cmd
}

func storeInitCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the tables of the configured store",
		Long: heredoc.Doc(`
			Create the assets and borrow_list tables. SQLite files are created
			when missing; PostgreSQL databases are migrated to the latest version.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := store.Init(cmd.Context(), a.cfg.Store, a.Logger())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), term.Green(msg))
			return nil
		},
	}
}
