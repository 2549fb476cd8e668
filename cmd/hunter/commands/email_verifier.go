package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func emailVerifierCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email-verifier EMAIL",
		Short: "Check the deliverability of an email address",
		Example: `  hunter email-verifier patrick@stripe.com
  hunter email-verifier patrick@stripe.com --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.EmailVerifier(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, resp)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Email:      %s\n", resp.Data.Email)
			fmt.Fprintf(out, "Status:     %s\n", resp.Data.Status)
			fmt.Fprintf(out, "Result:     %s\n", resp.Data.Result)
			fmt.Fprintf(out, "Score:      %d\n", resp.Data.Score)
			fmt.Fprintf(out, "Disposable: %t\n", resp.Data.Disposable)
			fmt.Fprintf(out, "Webmail:    %t\n", resp.Data.Webmail)
			fmt.Fprintf(out, "MX records: %t\n", resp.Data.MXRecords)
			fmt.Fprintf(out, "SMTP check: %t\n", resp.Data.SMTPCheck)
			return nil
		},
	}
	return cmd
}
