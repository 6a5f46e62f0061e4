package components

import (
	"do-coupon-system/internal/infra/lock"
	"do-coupon-system/internal/infra/metrics"
	"do-coupon-system/internal/infra/notifier"
	"do-coupon-system/internal/infra/reconcile"
	"do-coupon-system/internal/pkg/background"
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/usecase/commands"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		lock.New,
		reconcile.New,
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(commands.OutcomeRecorder)),
		),
		NewNotifier,
		NewBackground,
	),
)

// NewNotifier drains in-flight deliveries on shutdown.
func NewNotifier(lc fx.Lifecycle, cfg config.NotifyConfig) commands.Notifier {
	n := notifier.NewEmailNotifier(cfg)
	lc.Append(fx.Hook{
		OnStop: n.Shutdown,
	})
	return n
}

func NewBackground(lc fx.Lifecycle, cfg config.StoreConfig) commands.Background {
	g := background.New(cfg.Timeout)
	lc.Append(fx.Hook{
		OnStop: g.Shutdown,
	})
	return g
}
