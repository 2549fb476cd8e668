package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	hunter "github.com/obaidrock78/hunter-io-client"
)

func emailCountCmd() *cobra.Command {
	var params hunter.EmailCountParams

	cmd := &cobra.Command{
		Use:   "email-count",
		Short: "Count email addresses known for a domain or company",
		Example: `  hunter email-count --domain stripe.com
  hunter email-count --company "Stripe" --type generic`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.EmailCount(cmd.Context(), &params)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, resp)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total:    %d\n", resp.Data.Total)
			fmt.Fprintf(out, "Personal: %d\n", resp.Data.PersonalEmails)
			fmt.Fprintf(out, "Generic:  %d\n", resp.Data.GenericEmails)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Domain, "domain", "", "domain name to count emails for")
	cmd.Flags().StringVar(&params.Company, "company", "", "company name to count emails for")
	cmd.Flags().StringVar(&params.Type, "type", "", "count only personal or generic emails")

	return cmd
}
