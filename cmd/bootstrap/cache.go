package bootstrap

import (
	"context"
	"log/slog"

	"restaurant-reservations/internal/infra/cache"
	"restaurant-reservations/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewOccupancyCache,
	),
)

// NewRedisClient returns nil when Redis is not configured or unreachable.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DB.ConnectTimeout)
	defer cancel()

	client := cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if client == nil {
		return nil
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewOccupancyCache(client *redis.Client, cfg config.Config, logger *slog.Logger) *cache.OccupancyCache {
	return cache.NewOccupancyCache(client, cfg.Redis.TTL, logger)
}
