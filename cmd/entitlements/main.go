// cmd/entitlements/main.go
//
// Operational CLI for the entitlement layer. Talks to the same database
// as the API server; useful for provisioning and for answering support
// questions ("why can't this owner downgrade?") without going through HTTP.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fathomcrm/fathom/internal/authz"
	"github.com/fathomcrm/fathom/internal/config"
	"github.com/fathomcrm/fathom/internal/migrate"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/fathomcrm/fathom/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(log)

	root := &cobra.Command{
		Use:           "entitlements",
		Short:         "Administer plans, quotas and subscriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(plansCmd())
	root.AddCommand(downgradeCheckCmd())
	root.AddCommand(quotaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and seed the plan catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			pool, err := pgxpool.New(ctx, pgDSN(cfg))
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer pool.Close()

			if err := migrate.NewMigrator(pool).Run(ctx); err != nil {
				return err
			}

			slog.Info("migration complete", "database", cfg.Database.Name)
			return nil
		},
	}
}

func plansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List the plan catalog with its limits",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			plans, err := store.Plans.FindAll(ctx)
			if err != nil {
				return err
			}

			return printJSON(plans)
		},
	}
}

func downgradeCheckCmd() *cobra.Command {
	var (
		userEmail string
		plan      string
	)

	cmd := &cobra.Command{
		Use:   "downgrade-check",
		Short: "Report what would block moving a user to a lower plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			user, err := store.Users.FindByEmail(ctx, userEmail)
			if err != nil {
				return fmt.Errorf("looking up user %q: %w", userEmail, err)
			}

			analyzer := authz.NewDowngradeAnalyzer(
				store.Plans, store.Organizations, store.Memberships, store.Customers,
			)

			result, err := analyzer.Check(ctx, user.Identity(), model.PlanName(plan))
			if err != nil {
				return err
			}

			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&userEmail, "user", "", "email of the plan holder")
	cmd.Flags().StringVar(&plan, "plan", "", "target plan name")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("plan")

	return cmd
}

func quotaCmd() *cobra.Command {
	var (
		orgID string
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "quota",
		Short: "Show current usage against an organization's plan limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			id, err := uuid.Parse(orgID)
			if err != nil {
				return fmt.Errorf("parsing organization id: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			checker := authz.NewQuotaChecker(store.Subscriptions, store.Memberships, store.Customers)

			result, err := checker.Check(ctx, id, authz.ResourceKind(kind))
			if err != nil {
				return err
			}

			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "organization id")
	cmd.Flags().StringVar(&kind, "kind", string(authz.ResourceMembers), "resource kind (members or customers)")
	cmd.MarkFlagRequired("org")

	return cmd
}

func openStore() (*repository.Store, error) {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(pgDSN(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return repository.NewStore(db), nil
}

func pgDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
