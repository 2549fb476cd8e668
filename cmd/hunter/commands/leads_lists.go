package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	hunter "github.com/obaidrock78/hunter-io-client"
)

func leadsListsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads-lists",
		Short: "Manage leads lists",
	}
	cmd.AddCommand(
		leadsListsListCmd(),
		leadsListsGetCmd(),
		leadsListsCreateCmd(),
		leadsListsUpdateCmd(),
		leadsListsDeleteCmd(),
	)
	return cmd
}

func parseListID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid leads list ID %q: %w", arg, err)
	}
	return id, nil
}

func leadsListsListCmd() *cobra.Command {
	var params hunter.ListLeadsListsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.ListLeadsLists(cmd.Context(), &params)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, resp)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Leads lists: %d of %d\n\n", resp.Meta.Count, resp.Meta.Total)
			for _, list := range resp.Data.LeadsLists {
				fmt.Fprintf(out, "  %6d  %-40s %d leads\n", list.ID, list.Name, list.LeadsCount)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of lists to return")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of lists to skip")

	return cmd
}

func leadsListsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a single leads list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseListID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.GetLeadsList(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func leadsListsCreateCmd() *cobra.Command {
	var params hunter.LeadsListParams

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a leads list",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.CreateLeadsList(cmd.Context(), &params)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&params.Name, "name", "", "name of the leads list (required)")
	cmd.Flags().IntVar(&params.TeamID, "team-id", 0, "share the list with this team")

	return cmd
}

func leadsListsUpdateCmd() *cobra.Command {
	var params hunter.LeadsListParams

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename a leads list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseListID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.UpdateLeadsList(cmd.Context(), id, &params); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Leads list %d updated\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Name, "name", "", "new name of the leads list (required)")
	cmd.Flags().IntVar(&params.TeamID, "team-id", 0, "share the list with this team")

	return cmd
}

func leadsListsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a leads list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseListID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteLeadsList(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Leads list %d deleted\n", id)
			return nil
		},
	}
}
