package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/checkout"
	"github.com/goto/assetkeeper/core/inventory"
	"github.com/goto/assetkeeper/core/view"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func cartCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Collect available assets before checking them out",
		Long: heredoc.Doc(`
			The cart lives as long as the session. Outside the shell every
			command starts a new session, so use 'assetkeeper checkout <id>...'
			there instead.
		`),
		Example: heredoc.Doc(`
			$ assetkeeper shell
			> cart add 7
			> cart list
			> checkout
		`),
	}

	cmd.AddCommand(
		toggleCartCommand(a, "add", "Put an available asset in the cart", false),
		toggleCartCommand(a, "remove", "Take an asset out of the cart", true),
		listCartCommand(a),
	)
	return cmd
}

func toggleCartCommand(a *app, use, short string, inCart bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Session(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range args {
				if err := toggle(s, id, inCart); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d items in cart\n", len(s.Rows(view.Cart)))
			return nil
		},
	}
}

// toggle moves id into the cart, or out of it when inCart is set. Asking for
// the state an asset is already in is a no-op.
func toggle(s *inventory.Session, id string, inCart bool) error {
	h, err := s.Lookup(id)
	if err != nil {
		return err
	}
	rec, err := s.Get(h)
	if err != nil {
		return err
	}
	if (rec.State == asset.StateCart) == inCart {
		_, err = s.ToggleCart(h)
	}
	return err
}

func listCartCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Session(cmd.Context())
			if err != nil {
				return err
			}
			return printRows(cmd.OutOrStdout(), s.Rows(view.Cart), output)
		},
	}
	cmd.Flags().StringVarP(&output, "out", "o", "table", "output format, table or json")
	return cmd
}

func checkoutCommand(a *app) *cobra.Command {
	var firstName, lastName, email, comment string
	cmd := &cobra.Command{
		Use:   "checkout [<id>...]",
		Short: "Request a loan on every asset in the cart",
		Long: heredoc.Doc(`
			Reserve every asset in the cart for the borrower. Identifiers given as
			arguments are put in the cart first. Assets someone else reserved in
			the meantime are reported and left out.
		`),
		Example: heredoc.Doc(`
			$ assetkeeper checkout 7 8 --first-name Jane --last-name Doe --email jane@example.com
			$ assetkeeper checkout 7 --comment "field trip"
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Session(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range args {
				if err := toggle(s, id, false); err != nil {
					return err
				}
			}

			borrower := a.cfg.Borrower
			if cmd.Flags().Changed("first-name") {
				borrower.FirstName = firstName
			}
			if cmd.Flags().Changed("last-name") {
				borrower.LastName = lastName
			}
			if cmd.Flags().Changed("email") {
				borrower.Email = email
			}
			if borrower == (checkout.Borrower{}) {
				return errNoBorrower
			}

			spinner := printer.Spin("")
			res, err := s.Checkout(cmd.Context(), borrower, comment)
			spinner.Stop()
			for _, c := range res.Conflicts {
				fmt.Fprintln(cmd.ErrOrStderr(), term.Red(c.Err().Error()))
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), term.Green(res.Message()))
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "borrower first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "borrower last name")
	cmd.Flags().StringVar(&email, "email", "", "borrower email")
	cmd.Flags().StringVar(&comment, "comment", "", "note stored with the loan")

	return cmd
}

func historyCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show what this session did",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Session(cmd.Context())
			if err != nil {
				return err
			}
			events := s.History()
			if output == "json" {
				return printJSON(cmd.OutOrStdout(), events)
			}
			for _, e := range events {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", e.Time.Format("15:04:05"), e.Message)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "out", "o", "text", "output format, text or json")
	return cmd
}
