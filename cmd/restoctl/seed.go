package main

import (
	"context"
	"fmt"
	"os"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"
	"restaurant-reservations/internal/infra/readstore"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/infra/uow"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data",
	}
	cmd.AddCommand(newSeedConfigCmd())
	cmd.AddCommand(newSeedStaffCmd())
	return cmd
}

func newSeedConfigCmd() *cobra.Command {
	defaults := reservation.DefaultCapacityConfig()
	var front, gallery, hall, maxAdvanceDays int

	c := &cobra.Command{
		Use:   "config",
		Short: "Create or overwrite the capacity configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := reservation.NewCapacityConfig(front, gallery, hall, maxAdvanceDays)
			if err != nil {
				return err
			}
			return withPool(cmd.Context(), func(ctx context.Context, _ config.Config, pool *pgxpool.Pool) error {
				capacity := commands.NewCapacityCommands(uow.NewPostgresUoW(pool, sqlc.New()), clock.NewRealClock())
				saved, err := capacity.Seed(ctx, cfg)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "capacity config: front=%d gallery=%d hall=%d maxAdvanceDays=%d total=%d\n",
					saved.Front(), saved.Gallery(), saved.Hall(), saved.MaxAdvanceDays(), saved.Total())
				return nil
			})
		},
	}

	c.Flags().IntVar(&front, "front", defaults.Front(), "seats in the front zone")
	c.Flags().IntVar(&gallery, "gallery", defaults.Gallery(), "seats in the gallery zone")
	c.Flags().IntVar(&hall, "hall", defaults.Hall(), "seats in the hall zone")
	c.Flags().IntVar(&maxAdvanceDays, "max-advance-days", defaults.MaxAdvanceDays(), "how many days ahead customers may book")
	return c
}

func newSeedStaffCmd() *cobra.Command {
	var email, password, firstName, lastName, phone string

	c := &cobra.Command{
		Use:   "staff",
		Short: "Create a staff account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := user.NewCredentials(email, password)
			if err != nil {
				return err
			}
			profile, err := user.NewProfile(firstName, lastName, phone, false)
			if err != nil {
				return err
			}
			return withPool(cmd.Context(), func(ctx context.Context, _ config.Config, pool *pgxpool.Pool) error {
				q := sqlc.New()
				auth := commands.NewAuthCommands(
					uow.NewPostgresUoW(pool, q),
					readstore.NewUserReadStore(q, pool),
					nil,
					clock.NewRealClock(),
				)
				u, err := auth.CreateStaff(ctx, creds, profile)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "created staff user %s (%s)\n", u.Email().Value(), u.ID())
				return nil
			})
		},
	}

	c.Flags().StringVar(&email, "email", "", "login email")
	c.Flags().StringVar(&password, "password", "", "initial password")
	c.Flags().StringVar(&firstName, "first-name", "", "first name")
	c.Flags().StringVar(&lastName, "last-name", "", "last name")
	c.Flags().StringVar(&phone, "phone", "", "phone number")
	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("password")
	_ = c.MarkFlagRequired("first-name")
	_ = c.MarkFlagRequired("last-name")
	return c
}
