package bootstrap

import (
	"do-coupon-system/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	JWTModule,
	components.InfraModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
