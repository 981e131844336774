package main

import (
	"context"
	"fmt"
	"os"

	"restaurant-reservations/internal/infra/db"
	"restaurant-reservations/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}
	cmd.AddCommand(
		newMigrateSubCmd(db.MigrateUp, "Apply all pending migrations"),
		newMigrateSubCmd(db.MigrateDown, "Roll back the latest migration"),
		newMigrateSubCmd(db.MigrateStatus, "Print migration status"),
	)
	return cmd
}

func newMigrateSubCmd(mc db.MigrateCommand, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(mc),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, _ config.Config, pool *pgxpool.Pool) error {
				if err := db.Migrate(ctx, pool, mc); err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "migrate %s: ok\n", mc)
				return nil
			})
		},
	}
}
