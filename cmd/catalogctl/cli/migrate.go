package cli

import (
	"context"
	"fmt"
	"io"

	"catalog-service/internal/config"
	"catalog-service/internal/db"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long:  "Apply the SQL migrations bundled with the catalog API. Each one runs once and is recorded in schema_migrations.",
		Example: `  catalogctl migrate
  catalogctl migrate --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return listMigrations(cmd.OutOrStdout())
			}
			return runMigrate(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "Print the bundled migrations without connecting")

	return cmd
}

func listMigrations(out io.Writer) error {
	migrations, err := db.Migrations()
	if err != nil {
		return err
	}
	for _, m := range migrations {
		fmt.Fprintln(out, m.Name)
	}
	return nil
}

func runMigrate(ctx context.Context, out io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	dbCfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}
	pool, err := db.ConnectDB(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	applied, err := db.Migrate(ctx, pool)
	for _, name := range applied {
		fmt.Fprintf(out, "Applied %s\n", name)
	}
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		fmt.Fprintln(out, "Schema is up to date")
	}
	return nil
}
