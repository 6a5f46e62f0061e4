package bootstrap

import (
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/pkg/errs"
	"do-coupon-system/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService signs the session_token cookie; its lifetime also bounds the cookie.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.Duration <= 0 {
		return nil, errs.New("invalid JWT_DURATION: must be positive")
	}
	if len(cfg.JWT.Secret) < 16 {
		return nil, errs.New("invalid JWT_SECRET: must be at least 16 bytes")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration), nil
}
