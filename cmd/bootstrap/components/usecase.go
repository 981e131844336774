package components

import (
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra/cache"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/pkg/jwt"
	"restaurant-reservations/internal/usecase"
	"restaurant-reservations/internal/usecase/commands"
	"restaurant-reservations/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPolicy,
	func(s *jwt.Service) commands.TokenIssuer { return s },
	func(c *cache.OccupancyCache) commands.OccupancyInvalidator { return c },
	func(c *cache.OccupancyCache) queries.OccupancyCache { return c },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewCapacityCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewCapacityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPolicy(clk clock.Clock, cfg config.Config) (*reservation.Policy, error) {
	loc, err := cfg.Restaurant.Location()
	if err != nil {
		return nil, err
	}
	return reservation.NewPolicy(clk, loc), nil
}
