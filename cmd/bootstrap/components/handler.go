package components

import (
	"do-coupon-system/internal/handler"
	"do-coupon-system/internal/handler/api"
	"do-coupon-system/internal/handler/middleware"
	"do-coupon-system/internal/pkg/jwt"
	"do-coupon-system/internal/pkg/locale"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		locale.New,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		api.NewAuthHandler,
		api.NewCouponHandler,
		api.NewMembershipHandler,
		api.NewHistoryHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
