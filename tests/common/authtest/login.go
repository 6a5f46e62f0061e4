//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/handler/dto/request"
	"do-coupon-system/internal/pkg/cookie"
	"do-coupon-system/tests/common/builder"
	"do-coupon-system/tests/common/httptest"
	"do-coupon-system/tests/common/strapitest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// LoginAccount posts to /login and returns the session token cookie value.
func LoginAccount(t *testing.T, router *gin.Engine, name, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/login",
		request.LoginRequest{Name: name, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionTokenCookieName)
	require.NotNil(t, sessionCookie, "session token not found in cookies")
	require.NotEmpty(t, sessionCookie.Value, "session token cookie is empty")

	return sessionCookie.Value
}

// CreateAndLogin seeds an active account with DefaultPassword and logs in as it.
func CreateAndLogin(t *testing.T, srv *strapitest.Server, router *gin.Engine, name string, role account.Role) string {
	t.Helper()
	srv.Seed(srv.StoreConfig().AccountCollection, builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) {
		b.Name = name
		b.Role = role
		b.Password = DefaultPassword
	}).BuildAttrs(t))
	return LoginAccount(t, router, name, DefaultPassword)
}

func LogoutAccount(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
