package components

import (
	"do-coupon-system/internal/infra/readstore"
	"do-coupon-system/internal/infra/repository"
	"do-coupon-system/internal/usecase/commands"
	"do-coupon-system/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
		),
		fx.Annotate(
			repository.NewAccountRepository,
			fx.As(new(commands.AccountRepository)),
		),
		fx.Annotate(
			repository.NewMemberRepository,
			fx.As(new(commands.MemberRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(queries.AccountReadStore)),
		),
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
	),
)
