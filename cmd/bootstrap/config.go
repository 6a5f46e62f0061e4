package bootstrap

import (
	"do-coupon-system/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSections,
)

// ConfigSections splits a provided config.Config into the sections components depend on.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.StoreConfig { return cfg.Store },
	func(cfg config.Config) config.CouponConfig { return cfg.Coupon },
	func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	func(cfg config.Config) config.NotifyConfig { return cfg.Notify },
	func(cfg config.Config) config.LockConfig { return cfg.Lock },
)
