package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func accountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show account details and quota usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.Account(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, resp)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Email:         %s\n", resp.Data.Email)
			fmt.Fprintf(out, "Plan:          %s\n", resp.Data.PlanName)
			fmt.Fprintf(out, "Reset date:    %s\n", resp.Data.ResetDate)
			fmt.Fprintf(out, "Searches:      %d / %d\n",
				resp.Data.Requests.Searches.Used, resp.Data.Requests.Searches.Available)
			fmt.Fprintf(out, "Verifications: %d / %d\n",
				resp.Data.Requests.Verifications.Used, resp.Data.Requests.Verifications.Available)
			return nil
		},
	}
}
