package cmd

import (
	"github.com/spf13/cobra"
)

type args struct {
	version    string
	LogLevel   string
	ConfigPath string
	EnvFile    string
	TextFormat bool
}

// InitCommands initializes and returns the root command for the application.
func InitCommands(version string) *cobra.Command {
	args := &args{
		version: version,
	}

	cmd := &cobra.Command{
		Use:           "bbtoken",
		Short:         "Blackboard Learn session inspector",
		Long:          "bbtoken signs in to a Blackboard Learn instance as a REST integration and reports when the issued session token expires.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExpiration(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}

	cmd.PersistentFlags().StringVar(&args.ConfigPath, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&args.EnvFile, "env-file", ".env", "dotenv file path")
	cmd.PersistentFlags().StringVar(&args.LogLevel, "loglevel", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&args.TextFormat, "logtext", false, "log in text format, otherwise JSON")

	cmd.AddCommand(tokenCommand(args), versionCommand(args))

	return cmd
}
