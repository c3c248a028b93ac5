package main

import (
	"fmt"
	"os"

	"clinic-booking/cmd/bootstrap"
	"clinic-booking/config"
	"clinic-booking/internal/infrastructure/cache"
	"clinic-booking/internal/infrastructure/database"
	"clinic-booking/internal/repository"
	"clinic-booking/internal/service"
	"clinic-booking/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinicctl",
		Short: "Clinic booking API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(adminCmd())
	rootCmd.AddCommand(sessionsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New()
			if err != nil {
				return err
			}

			// Run the application
			app.Run()
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap.Connect()
			if err != nil {
				return err
			}
			defer bootstrap.CloseDB(db)

			return database.Migrate(db)
		},
	}
}

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the admin allowlist",
		Long: "Manage the admin allowlist. The allowlist is read when a profile is " +
			"first created, so existing profiles keep their role.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "grant <email>",
		Short: "Add an email to the admin allowlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admins, closeDB, err := adminAllowlist()
			if err != nil {
				return err
			}
			defer closeDB()

			created, err := admins.Grant(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already an admin\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s added to the admin allowlist\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "revoke <email>",
		Short: "Remove an email from the admin allowlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admins, closeDB, err := adminAllowlist()
			if err != nil {
				return err
			}
			defer closeDB()

			removed, err := admins.Revoke(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d allowlist entries removed for %s\n", removed, args[0])
			return nil
		},
	})

	return cmd
}

func adminAllowlist() (usecase.AdminAllowlistUsecase, func(), error) {
	_, db, err := bootstrap.Connect()
	if err != nil {
		return nil, nil, err
	}

	admins := usecase.NewAdminAllowlistUsecase(logrus.StandardLogger(), repository.NewDocumentStore(db))
	return admins, func() { bootstrap.CloseDB(db) }, nil
}

func sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage session records",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "revoke <account-id>",
		Short: "Sign an account out of every session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			client, err := cache.NewRedisClient(cmd.Context(), cfg.Redis)
			if err != nil {
				return err
			}
			defer cache.CloseRedis(client)

			sessions := service.NewSessionStore(client, logrus.StandardLogger())
			removed, err := sessions.DeleteAll(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d sessions revoked for %s\n", removed, args[0])
			return nil
		},
	})

	return cmd
}
