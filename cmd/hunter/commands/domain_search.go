package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	hunter "github.com/obaidrock78/hunter-io-client"
)

func domainSearchCmd() *cobra.Command {
	var params hunter.DomainSearchParams

	cmd := &cobra.Command{
		Use:   "domain-search",
		Short: "List email addresses found for a domain or company",
		Example: `  hunter domain-search --domain stripe.com
  hunter domain-search --company "Stripe" --type personal --limit 5
  hunter domain-search --domain stripe.com --department it --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.DomainSearch(cmd.Context(), &params)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, resp)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Domain:       %s\n", resp.Data.Domain)
			fmt.Fprintf(out, "Organization: %s\n", resp.Data.Organization)
			if resp.Data.Pattern != "" {
				fmt.Fprintf(out, "Pattern:      %s\n", resp.Data.Pattern)
			}
			fmt.Fprintf(out, "Results:      %d\n\n", resp.Meta.Results)
			for _, email := range resp.Data.Emails {
				fmt.Fprintf(out, "  %-40s %3d%%  %s\n", email.Value, email.Confidence, email.Type)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Domain, "domain", "", "domain name to search")
	cmd.Flags().StringVar(&params.Company, "company", "", "company name to search")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of emails to return")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of emails to skip")
	cmd.Flags().StringVar(&params.Type, "type", "", "filter by email type (personal or generic)")
	cmd.Flags().StringVar(&params.Seniority, "seniority", "", "filter by seniority (junior, senior, executive)")
	cmd.Flags().StringVar(&params.Department, "department", "", "filter by department (it, sales, marketing, ...)")

	return cmd
}
