package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	hunter "github.com/obaidrock78/hunter-io-client"
)

func emailFinderCmd() *cobra.Command {
	var params hunter.EmailFinderParams

	cmd := &cobra.Command{
		Use:   "email-finder",
		Short: "Find the most likely email address of a person",
		Example: `  hunter email-finder --domain stripe.com --first-name Patrick --last-name Collison
  hunter email-finder --company "Stripe" --full-name "Patrick Collison" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.EmailFinder(cmd.Context(), &params)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, resp)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Email:      %s\n", resp.Data.Email)
			fmt.Fprintf(out, "Score:      %d\n", resp.Data.Score)
			fmt.Fprintf(out, "Name:       %s %s\n", resp.Data.FirstName, resp.Data.LastName)
			if resp.Data.Position != "" {
				fmt.Fprintf(out, "Position:   %s\n", resp.Data.Position)
			}
			if v := resp.Data.Verification; v != nil && v.Status != "" {
				fmt.Fprintf(out, "Verified:   %s (%s)\n", v.Status, v.Date)
			}
			fmt.Fprintf(out, "Sources:    %d\n", len(resp.Data.Sources))
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Domain, "domain", "", "domain name of the company")
	cmd.Flags().StringVar(&params.Company, "company", "", "company name")
	cmd.Flags().StringVar(&params.FirstName, "first-name", "", "first name of the person")
	cmd.Flags().StringVar(&params.LastName, "last-name", "", "last name of the person")
	cmd.Flags().StringVar(&params.FullName, "full-name", "", "full name of the person (alternative to first/last)")
	cmd.Flags().IntVar(&params.MaxDuration, "max-duration", 0, "maximum duration of the request in seconds (3 to 20)")

	return cmd
}
