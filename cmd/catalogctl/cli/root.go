package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var envFile string

// Execute creates the root command tree and runs it.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Operate the Interplast catalog backend",
		Long: `catalogctl provisions administrator accounts and applies schema migrations
for the catalog API.

It reads DATABASE_URL from the environment or from a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing env file is fine; the environment may already be set.
			_ = godotenv.Load(envFile)
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before connecting")

	cmd.AddCommand(newAdminCmd())
	cmd.AddCommand(newMigrateCmd())

	return cmd
}
