package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	hunter "github.com/obaidrock78/hunter-io-client"
)

func leadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Manage leads",
	}
	cmd.AddCommand(
		leadsListCmd(),
		leadsGetCmd(),
		leadsCreateCmd(),
		leadsUpdateCmd(),
		leadsDeleteCmd(),
	)
	return cmd
}

func parseLeadID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid lead ID %q: %w", arg, err)
	}
	return id, nil
}

func leadsListCmd() *cobra.Command {
	var params hunter.ListLeadsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.ListLeads(cmd.Context(), &params)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, resp)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Leads: %d of %d\n\n", resp.Meta.Count, resp.Meta.Total)
			for _, lead := range resp.Data.Leads {
				fmt.Fprintf(out, "  %6d  %-40s %s %s\n", lead.ID, lead.Email, lead.FirstName, lead.LastName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Email, "email", "", "filter by email address")
	cmd.Flags().StringVar(&params.Company, "company", "", "filter by company name")
	cmd.Flags().IntVar(&params.LeadsListID, "leads-list-id", 0, "filter by leads list ID")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of leads to return")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of leads to skip")

	return cmd
}

func leadsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a single lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLeadID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.GetLead(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func leadsCreateCmd() *cobra.Command {
	var params hunter.LeadParams

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a lead",
		Example: `  hunter leads create --email patrick@stripe.com --first-name Patrick --last-name Collison
  hunter leads create --email patrick@stripe.com --leads-list-id 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.CreateLead(cmd.Context(), &params)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&params.Email, "email", "", "email address of the lead (required)")
	cmd.Flags().StringVar(&params.FirstName, "first-name", "", "first name of the lead")
	cmd.Flags().StringVar(&params.LastName, "last-name", "", "last name of the lead")
	cmd.Flags().StringVar(&params.Company, "company", "", "company of the lead")
	cmd.Flags().StringVar(&params.Position, "position", "", "position of the lead")
	cmd.Flags().StringVar(&params.Notes, "notes", "", "personal notes about the lead")
	cmd.Flags().IntVar(&params.LeadsListID, "leads-list-id", 0, "leads list to add the lead to")

	return cmd
}

func leadsUpdateCmd() *cobra.Command {
	var params hunter.LeadParams

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLeadID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.UpdateLead(cmd.Context(), id, &params); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Lead %d updated\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Email, "email", "", "email address of the lead")
	cmd.Flags().StringVar(&params.FirstName, "first-name", "", "first name of the lead")
	cmd.Flags().StringVar(&params.LastName, "last-name", "", "last name of the lead")
	cmd.Flags().StringVar(&params.Company, "company", "", "company of the lead")
	cmd.Flags().StringVar(&params.Position, "position", "", "position of the lead")
	cmd.Flags().StringVar(&params.Notes, "notes", "", "personal notes about the lead")
	cmd.Flags().IntVar(&params.LeadsListID, "leads-list-id", 0, "move the lead to this leads list")

	return cmd
}

func leadsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLeadID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteLead(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Lead %d deleted\n", id)
			return nil
		},
	}
}
