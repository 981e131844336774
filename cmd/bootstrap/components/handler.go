package components

import (
	"restaurant-reservations/internal/handler"
	"restaurant-reservations/internal/handler/api"
	"restaurant-reservations/internal/handler/middleware"
	"restaurant-reservations/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
		api.NewCustomerHandler,
		api.NewCapacityHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.IPRateLimiter {
			return middleware.NewLoginRateLimiter(cfg.RateLimit)
		},
		func(
			auth *api.AuthHandler,
			res *api.ReservationHandler,
			admin *api.AdminHandler,
			customer *api.CustomerHandler,
			capacity *api.CapacityHandler,
		) handler.Handlers {
			return handler.Handlers{Auth: auth, Reservation: res, Admin: admin, Customer: customer, Capacity: capacity}
		},
	),
	fx.Invoke(
		middleware.RegisterValidators,
		handler.NewRouter,
	),
)
