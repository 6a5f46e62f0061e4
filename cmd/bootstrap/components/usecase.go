package components

import (
	"do-coupon-system/internal/pkg/clock"
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/usecase/commands"
	"do-coupon-system/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewMembershipCommands,
		NewCouponCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCouponQueries,
		queries.NewHistoryQueries,
		queries.NewSessionQueries,
		queries.NewMembershipQueries,
	),
)

type couponCommandParams struct {
	fx.In

	Coupons    commands.CouponRepository
	Accounts   commands.AccountRepository
	Locker     commands.RedemptionLocker
	Reconciler commands.ReconciliationRecorder
	Notifier   commands.Notifier
	Outcomes   commands.OutcomeRecorder
	Background commands.Background
	Clock      clock.Clock
	Config     config.CouponConfig
}

func NewCouponCommands(p couponCommandParams) commands.CouponCommands {
	return commands.NewCouponCommands(commands.CouponDeps{
		Coupons:    p.Coupons,
		Accounts:   p.Accounts,
		Locker:     p.Locker,
		Reconciler: p.Reconciler,
		Notifier:   p.Notifier,
		Outcomes:   p.Outcomes,
		Background: p.Background,
		Clock:      p.Clock,
		Config:     p.Config,
	})
}
