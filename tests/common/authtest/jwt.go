//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, username string, role account.Role, membershipField string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, err := service.GenerateToken(username, role, membershipField)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, username string, role account.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, time.Millisecond)
	token, err := service.GenerateToken(username, role, "")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
