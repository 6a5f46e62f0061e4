package api

import (
	"net/http"

	"do-coupon-system/internal/domain/account"
	reqdto "do-coupon-system/internal/handler/dto/request"
	resdto "do-coupon-system/internal/handler/dto/response"
	"do-coupon-system/internal/handler/httperr"
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/pkg/cookie"
	"do-coupon-system/internal/pkg/errs"
	"do-coupon-system/internal/pkg/locale"
	"do-coupon-system/internal/usecase/commands"
	"do-coupon-system/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	sessions  queries.SessionQueries
	tr        *locale.Translator
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, sessions queries.SessionQueries, tr *locale.Translator, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		sessions:  sessions,
		tr:        tr,
		cookieCfg: cookieCfg,
	}
}

// @Summary Login
// @Description Login with account name and password. Sets the session cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} resdto.LoginFailure
// @Failure 401 {object} resdto.LoginFailure
// @Failure 404 {object} resdto.LoginFailure
// @Failure 500 {object} resdto.LoginFailure
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, resdto.NewLoginFailure(h.tr.T(c, locale.MsgLoginMissing)))
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		status, msg := http.StatusInternalServerError, locale.MsgServerError
		switch {
		case errs.Is(err, commands.ErrInvalidInput):
			status, msg = http.StatusBadRequest, locale.MsgLoginMissing
		case errs.Is(err, commands.ErrAccountNotFound):
			status, msg = http.StatusNotFound, locale.MsgLoginNotFound
		case errs.Is(err, commands.ErrInvalidCredentials):
			status, msg = http.StatusUnauthorized, locale.MsgLoginWrongPassword
		case errs.Is(err, commands.ErrAccountInactive):
			status, msg = http.StatusUnauthorized, locale.MsgLoginInactive
		}
		httperr.AbortWithError(c, status, err, resdto.NewLoginFailure(h.tr.T(c, msg)))
		return
	}

	cookie.SetSessionCookies(c, h.cookieCfg, cookie.Session{
		Username:        result.Name,
		Role:            result.Role.String(),
		MembershipField: result.MembershipField,
		Token:           result.Token,
	})
	c.JSON(http.StatusOK, resdto.FromLoginResult(result, h.tr.T(c, locale.MsgLoginSuccess)))
}

// @Summary Logout
// @Description Clear the session cookies
// @Tags auth
// @Success 204 "No Content"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Verify session
// @Description Check that exactly one active account has this name and role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifySessionRequest true "Session identity"
// @Success 200 {object} resdto.VerifySessionResponse
// @Failure 401 {object} resdto.VerifySessionResponse
// @Failure 500 {object} resdto.VerifySessionResponse
// @Router /verify-session [post]
func (h *AuthHandler) VerifySession(c *gin.Context) {
	var req reqdto.VerifySessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, resdto.VerifySessionResponse{Valid: false})
		return
	}

	if err := h.sessions.Verify(c.Request.Context(), req.Name, account.Role(req.Role)); err != nil {
		status := http.StatusUnauthorized
		if errs.Is(err, queries.ErrStoreUnavailable) {
			status = http.StatusInternalServerError
		}
		httperr.AbortWithError(c, status, err, resdto.VerifySessionResponse{Valid: false})
		return
	}
	c.JSON(http.StatusOK, resdto.VerifySessionResponse{Valid: true})
}
