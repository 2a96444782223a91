package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// tokenCommand returns the subcommand that prints the raw bearer token, for
// piping into curl or other tooling.
func tokenCommand(arg *args) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the session bearer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := initLogger(arg); err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}

			ctx := withRequestID(cmd.Context())

			client, err := newClient(ctx, arg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), client.AccessToken())

			return nil
		},
	}
}
