package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/inventory"
	"github.com/goto/assetkeeper/core/view"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func assetCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "asset",
		Aliases: []string{"assets"},
		Short:   "Manage assets and their loans",
		Annotations: map[string]string{
			"group": "core",
		},
		Example: heredoc.Doc(`
		$ assetkeeper asset list
		$ assetkeeper asset add <id>[,<id>...]
		$ assetkeeper asset edit <id>
		$ assetkeeper asset delete <id>
		$ assetkeeper asset approve <id>
		$ assetkeeper asset available <id>
		$ assetkeeper asset return <id>
		$ assetkeeper asset extend <id>
		`),
	}

	cmd.AddCommand(
		listAssetsCommand(a),
		addAssetCommand(a),
		editAssetCommand(a),
		deleteAssetCommand(a),
		transitionCommand(a, "approve", "Approve a requested loan", (*inventory.Session).Approve),
		transitionCommand(a, "available", "Make a requested or borrowed asset available again", (*inventory.Session).MakeAvailable),
		transitionCommand(a, "return", "Return a borrowed asset", (*inventory.Session).Return),
		extendAssetCommand(a),
	)

	return cmd
}

func listAssetsCommand(a *app) *cobra.Command {
	var query, sortBy, output string
	var desc bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the inventory",
		Example: heredoc.Doc(`
			$ assetkeeper asset list
			$ assetkeeper asset list --query camera --sort due_date --desc
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Session(cmd.Context())
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("query") {
				s.Search(query)
			}
			if sortBy != "" {
				field, err := asset.ParseField(sortBy)
				if err != nil {
					return err
				}
				if err := s.Sort(view.Inventory, field, desc); err != nil {
					return err
				}
			}
			return printRows(cmd.OutOrStdout(), s.Rows(view.Inventory), output)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "only list assets matching the query")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "sort by column")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")
	cmd.Flags().StringVarP(&output, "out", "o", "table", "output format, table or json")

	return cmd
}

func addAssetCommand(a *app) *cobra.Command {
	var req inventory.AddRequest
	cmd := &cobra.Command{
		Use:   "add <id>[,<id>...]",
		Short: "Add one asset per identifier",
		Example: heredoc.Doc(`
			$ assetkeeper asset add 7 --name "Camera" --location "Shelf A"
			$ assetkeeper asset add 7,8,9 --name "Tripod" --location "Closet" --purchased 2023-04-01
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Session(cmd.Context())
			if err != nil {
				return err
			}

			req.IDs = args[0]
			if _, err := s.Add(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), term.Green(s.LastMessage()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "name of the asset")
	cmd.Flags().StringVarP(&req.StorageLocation, "location", "l", "", "where the asset is kept")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "free text description")
	cmd.Flags().StringVarP(&req.PurchaseDate, "purchased", "p", "", "purchase date, YYYY-MM-DD")

	return cmd
}

func editAssetCommand(a *app) *cobra.Command {
	var id, name, description, purchased, location string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit the details of an asset",
		Example: heredoc.Doc(`
			$ assetkeeper asset edit 7 --name "Camera body"
			$ assetkeeper asset edit 7 --id 70
			$ assetkeeper asset edit 7 --description ""
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Session(cmd.Context())
			if err != nil {
				return err
			}
			h, err := s.Lookup(args[0])
			if err != nil {
				return err
			}

			var req inventory.EditRequest
			flags := cmd.Flags()
			for flag, target := range map[string]**string{
				"id":          &req.ID,
				"name":        &req.Name,
				"description": &req.Description,
				"purchased":   &req.PurchaseDate,
				"location":    &req.StorageLocation,
			} {
				if flags.Changed(flag) {
					v, _ := flags.GetString(flag)
					*target = &v
				}
			}

			changes, err := s.Edit(cmd.Context(), h, req)
			if err != nil {
				return err
			}
			if len(changes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), term.Yellow("Nothing to change"))
				return nil
			}
			for _, c := range changes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v -> %v\n", strings.Join(c.Path, "."), display(c.From), display(c.To))
			}
			fmt.Fprintln(cmd.OutOrStdout(), term.Green(s.LastMessage()))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "new identifier")
	cmd.Flags().StringVarP(&name, "name", "n", "", "new name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description, empty to clear")
	cmd.Flags().StringVarP(&purchased, "purchased", "p", "", "new purchase date, empty to clear")
	cmd.Flags().StringVarP(&location, "location", "l", "", "new storage location")

	return cmd
}

func display(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return absent
	case *string:
		if v == nil {
			return absent
		}
		return *v
	}
	return fmt.Sprint(v)
}

func deleteAssetCommand(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an asset and any loan on it",
		Example: heredoc.Doc(`
			$ assetkeeper asset delete 7
			$ assetkeeper asset delete 7 --yes
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Session(cmd.Context())
			if err != nil {
				return err
			}
			h, err := s.Lookup(args[0])
			if err != nil {
				return err
			}

			confirm := func(rec asset.Record) bool {
				return yes || ask(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete %s (%s)?", rec.Name, rec.ID))
			}
			if err := s.Delete(cmd.Context(), h, confirm); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), term.Green(s.LastMessage()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func ask(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func transitionCommand(a *app, use, short string, op func(*inventory.Session, context.Context, asset.Handle) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Session(cmd.Context())
			if err != nil {
				return err
			}
			h, err := s.Lookup(args[0])
			if err != nil {
				return err
			}
			if err := op(s, cmd.Context(), h); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), term.Green(s.LastMessage()))
			return nil
		},
	}
}

func extendAssetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "extend <id>",
		Short: "Push the due date back by one loan period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Session(cmd.Context())
			if err != nil {
				return err
			}
			h, err := s.Lookup(args[0])
			if err != nil {
				return err
			}
			due, err := s.Extend(cmd.Context(), h)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s, now due %s\n", term.Green(s.LastMessage()), due)
			return nil
		},
	}
}
