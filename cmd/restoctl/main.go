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

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "restoctl",
		Short:         "Administrative tasks for the restaurant reservations service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())

	return root
}

// withPool loads the service configuration and hands fn a connected pool.
func withPool(ctx context.Context, fn func(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.DB.ConnectTimeout)
	defer cancel()
	pool, cleanup, err := db.Connect(connectCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(ctx, cfg, pool)
}
