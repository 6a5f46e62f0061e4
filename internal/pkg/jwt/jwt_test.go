//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	token, err := svc.GenerateToken("provA", account.RoleProvider, "members")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "provA", claims.Username)
	assert.Equal(t, "Provider", claims.Role)
	assert.Equal(t, "members", claims.MembershipField)
	assert.Equal(t, "provA", claims.Subject)
	assert.Equal(t, jwt.Issuer, claims.Issuer)
}

func TestValidateToken_Errors(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("other", time.Hour)
		token, err := other.GenerateToken("provA", account.RoleProvider, "")
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		short := jwt.NewService("secret", -time.Minute)
		token, err := short.GenerateToken("provA", account.RoleAdmin, "")
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestValidateToken_ForeignClaims(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	sign := func(t *testing.T, claims gojwt.Claims, method gojwt.SigningMethod) string {
		t.Helper()
		token, err := gojwt.NewWithClaims(method, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		return token
	}
	valid := func() jwt.Claims {
		return jwt.Claims{
			Username: "provA",
			Role:     "Provider",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    jwt.Issuer,
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	testCases := []struct {
		name   string
		mutate func(c *jwt.Claims)
		method gojwt.SigningMethod
	}{
		{name: "other issuer", mutate: func(c *jwt.Claims) { c.Issuer = "someone-else" }, method: gojwt.SigningMethodHS256},
		{name: "unknown role", mutate: func(c *jwt.Claims) { c.Role = "Root" }, method: gojwt.SigningMethodHS256},
		{name: "no username", mutate: func(c *jwt.Claims) { c.Username = "" }, method: gojwt.SigningMethodHS256},
		{name: "no expiry", mutate: func(c *jwt.Claims) { c.ExpiresAt = nil }, method: gojwt.SigningMethodHS256},
		{name: "other algorithm", mutate: func(*jwt.Claims) {}, method: gojwt.SigningMethodHS512},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			_, err := svc.ValidateToken(sign(t, c, tc.method))
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}

	t.Run("control: untouched claims pass", func(t *testing.T) {
		c := valid()
		_, err := svc.ValidateToken(sign(t, c, gojwt.SigningMethodHS256))
		assert.NoError(t, err)
	})
}

func TestGenerateToken_RejectsUnknownRole(t *testing.T) {
	_, err := jwt.NewService("secret", time.Hour).GenerateToken("provA", account.Role("Root"), "")
	assert.ErrorIs(t, err, account.ErrInvalidRole)
}
