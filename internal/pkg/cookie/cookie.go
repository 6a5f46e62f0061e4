package cookie

import (
	"net/http"

	"do-coupon-system/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionTokenCookieName    = "session_token"
	UsernameCookieName        = "username"
	RoleCookieName            = "role"
	MembershipFieldCookieName = "membershipField"
	LanguageCookieName        = "i18next"
)

type Session struct {
	Username        string
	Role            string
	MembershipField string
	Token           string
}

// SetSessionCookies writes the client-readable identity cookies the front-end
// reads plus the HttpOnly session token.
func SetSessionCookies(c *gin.Context, cfg config.CookieConfig, s Session) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	maxAge := int(cfg.MaxAge.Seconds())

	c.SetCookie(UsernameCookieName, s.Username, maxAge, "/", cfg.Domain, cfg.Secure, false)
	c.SetCookie(RoleCookieName, s.Role, maxAge, "/", cfg.Domain, cfg.Secure, false)
	c.SetCookie(MembershipFieldCookieName, s.MembershipField, maxAge, "/", cfg.Domain, cfg.Secure, false)
	c.SetCookie(
		SessionTokenCookieName,
		s.Token,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearSessionCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	for _, name := range []string{UsernameCookieName, RoleCookieName, MembershipFieldCookieName} {
		c.SetCookie(name, "", -1, "/", cfg.Domain, cfg.Secure, false)
	}
	c.SetCookie(SessionTokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionTokenCookieName)
	return token
}

func GetLanguage(c *gin.Context) string {
	lang, _ := c.Cookie(LanguageCookieName)
	return lang
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
