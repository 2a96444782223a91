package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCommand returns the subcommand that prints the version of the Learn
// server behind the configured instance.
func versionCommand(arg *args) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the Learn server version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := initLogger(arg); err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}

			ctx := withRequestID(cmd.Context())

			client, err := newClient(ctx, arg)
			if err != nil {
				return err
			}

			info, err := client.SystemVersion(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch server version: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), info)

			return nil
		},
	}
}
