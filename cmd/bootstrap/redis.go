package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"trip-booking/internal/infra/lock"
	"trip-booking/internal/pkg/config"
	"trip-booking/internal/pkg/patch"
	"trip-booking/internal/usecase/commands"
)

const defaultLockTTL = 30 * time.Second

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewDeliveryLock,
	),
)

// NewDeliveryLock falls back to lock.Noop when Redis is disabled; the ledger's
// unique key still rejects duplicate deliveries on its own.
func NewDeliveryLock(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.DeliveryLock {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled; webhook deliveries are deduplicated by the ledger only")
		return lock.Noop{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// Acquire errors fall back to the ledger, so an unreachable Redis is not fatal.
				logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return lock.NewRedisLock(client, patch.NonZero(cfg.Redis.LockTTL, defaultLockTTL))
}
