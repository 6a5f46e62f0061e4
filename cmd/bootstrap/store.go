package bootstrap

import (
	"context"
	"log/slog"

	"do-coupon-system/internal/infra/strapi"
	"do-coupon-system/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		strapi.NewClient,
		NewRedis,
	),
)

// NewRedis returns nil when REDIS_ADDR is unset; consumers fall back to
// in-process behaviour.
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	cli := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cli.Ping(ctx).Err(); err != nil {
				slog.Warn("redis not reachable at startup", slog.String("addr", cfg.Redis.Addr), slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return cli.Close()
		},
	})
	return cli
}
