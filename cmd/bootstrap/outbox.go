package bootstrap

import (
	"context"
	"log/slog"

	"restaurant-reservations/internal/infra/broker"
	"restaurant-reservations/internal/infra/outbox"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/usecase/shared"

	"go.uber.org/fx"
)

var OutboxModule = fx.Module("outbox",
	fx.Invoke(
		StartOutboxRelay,
	),
)

// StartOutboxRelay runs the relay for the app lifetime. Without RABBITMQ_URL
// jobs stay queued for a later deployment to pick up.
func StartOutboxRelay(lc fx.Lifecycle, uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, logger *slog.Logger) {
	if cfg.RabbitMQ.URL == "" {
		logger.Info("RABBITMQ_URL not set, outbox relay disabled")
		return
	}

	publisher := broker.NewAMQPPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logger)
	relay := outbox.NewRelay(uow, publisher, clk, cfg.Outbox, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			logger.Info("outbox relay started", "exchange", cfg.RabbitMQ.Exchange)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return publisher.Close()
		},
	})
}
