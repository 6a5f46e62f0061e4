package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/handler/httperr"
	"do-coupon-system/internal/pkg/cookie"
	"do-coupon-system/internal/pkg/jwt"
	"do-coupon-system/internal/pkg/locale"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
	translator     *locale.Translator
}

const (
	ctxUsernameKey        = "username"
	ctxRoleKey            = "user_role"
	ctxMembershipFieldKey = "membership_field"
)

func NewAuthMiddleware(tokenValidator TokenValidator, translator *locale.Translator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		translator:     translator,
	}
}

// RequireAuth accepts the session cookie first, then a Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.Message(m.translator.T(c, locale.MsgAuthRequired)))
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, httperr.Message(m.translator.T(c, locale.MsgAuthRequired)))
			return
		}

		c.Set(ctxUsernameKey, claims.Username)
		c.Set(ctxRoleKey, account.Role(claims.Role))
		c.Set(ctxMembershipFieldKey, claims.MembershipField)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, httperr.Message(m.translator.T(c, locale.MsgServerError)))
			return
		}
		if !slices.Contains(roles, role) {
			httperr.AbortWithError(c, http.StatusForbidden, nil, httperr.Message(m.translator.T(c, locale.MsgAuthForbidden)))
			return
		}
		c.Next()
	}
}

func GetUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUsernameKey)
	if !exists {
		return "", false
	}
	name, ok := v.(string)
	return name, ok && name != ""
}

func GetUserRole(c *gin.Context) (account.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(account.Role)
	return role, ok
}

func GetMembershipField(c *gin.Context) string {
	return c.GetString(ctxMembershipFieldKey)
}
