package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"catalog-service/internal/config"
	"catalog-service/internal/db"
	"catalog-service/internal/domain/admin"
	"catalog-service/internal/repository/postgres"
	authUsecase "catalog-service/internal/service/auth"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const commandTimeout = time.Minute

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
		Long:  "Create, refresh and reset the administrator accounts that sign in to the catalog admin API.",
	}

	cmd.AddCommand(newAdminSetupCmd())
	cmd.AddCommand(newAdminResetCmd())

	return cmd
}

// ---------- admin setup ----------

func newAdminSetupCmd() *cobra.Command {
	var seed admin.Seed

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create an admin or refresh an existing one",
		Example: `  catalogctl admin setup --email admin@interplast.cl --name "Administrador"
  catalogctl admin setup --email admin@interplast.cl --name Admin --password secret123`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed.Password == "" {
				pw, err := promptPassword(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				seed.Password = pw
			}
			return runAdminSetup(cmd.Context(), cmd.OutOrStdout(), seed)
		},
	}

	cmd.Flags().StringVar(&seed.Email, "email", "", "Admin email address (required)")
	cmd.Flags().StringVar(&seed.Name, "name", "Administrador", "Admin display name")
	cmd.Flags().StringVar(&seed.Password, "password", "", "Admin password (prompted if omitted)")
	cmd.MarkFlagRequired("email")

	return cmd
}

func runAdminSetup(ctx context.Context, out io.Writer, seed admin.Seed) error {
	return withAuthService(ctx, func(ctx context.Context, svc *authUsecase.AuthService) error {
		created, err := svc.EnsureAdmin(ctx, seed)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out, "Created admin %q\n", strings.ToLower(strings.TrimSpace(seed.Email)))
		} else {
			fmt.Fprintf(out, "Updated admin %q\n", strings.ToLower(strings.TrimSpace(seed.Email)))
		}
		return nil
	})
}

// ---------- admin reset ----------

// accountsFile is the YAML document read by admin reset.
type accountsFile struct {
	Admins []admin.Seed `yaml:"admins"`
}

func newAdminResetCmd() *cobra.Command {
	var (
		file string
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace every admin account with the ones in a file",
		Example: `  catalogctl admin reset --file admins.yaml

  # admins.yaml
  admins:
    - email: admin@interplast.cl
      name: Administrador
      password: a-long-password`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := loadSeeds(file)
			if err != nil {
				return err
			}
			if !yes {
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("This deletes every admin account and creates %d new ones. Continue?", len(seeds)))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}
			return runAdminReset(cmd.Context(), cmd.OutOrStdout(), seeds)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file listing the accounts (required)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runAdminReset(ctx context.Context, out io.Writer, seeds []admin.Seed) error {
	return withAuthService(ctx, func(ctx context.Context, svc *authUsecase.AuthService) error {
		accounts, err := svc.ResetAdmins(ctx, seeds)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%-36s %-32s %s\n", "ID", "EMAIL", "NAME")
		fmt.Fprintf(out, "%-36s %-32s %s\n", "--", "-----", "----")
		for _, a := range accounts {
			fmt.Fprintf(out, "%-36s %-32s %s\n", a.ID, a.Email, a.Name)
		}
		return nil
	})
}

// loadSeeds reads the accounts file. Passwords are validated later by the
// auth service.
func loadSeeds(path string) ([]admin.Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}

	var f accountsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(f.Admins) == 0 {
		return nil, fmt.Errorf("%s lists no admins", path)
	}
	return f.Admins, nil
}

// ---------- helpers ----------

func withAuthService(ctx context.Context, fn func(context.Context, *authUsecase.AuthService) error) error {
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

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Account provisioning needs neither tokens nor the login tracker.
	repo := postgres.NewAdminRepository(postgres.NewDB(pool))
	svc := authUsecase.NewAuthService(repo, nil, nil, nil, logger)

	return fn(ctx, svc)
}

func promptPassword(out io.Writer) (string, error) {
	fmt.Fprint(out, "Password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Fprintln(out)

	fmt.Fprint(out, "Confirm password: ")
	again, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}
	fmt.Fprintln(out)

	if string(pw) != string(again) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(pw), nil
}

func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	}
	return false, nil
}
