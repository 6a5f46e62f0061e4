package api

import (
	"net/http"

	"do-coupon-system/internal/domain/coupon"
	reqdto "do-coupon-system/internal/handler/dto/request"
	resdto "do-coupon-system/internal/handler/dto/response"
	"do-coupon-system/internal/handler/httperr"
	"do-coupon-system/internal/handler/middleware"
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/pkg/errs"
	"do-coupon-system/internal/pkg/locale"
	"do-coupon-system/internal/pkg/patch"
	"do-coupon-system/internal/pkg/qr"
	"do-coupon-system/internal/usecase/commands"
	"do-coupon-system/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var statusMessages = map[coupon.Status]string{
	coupon.StatusValid:    locale.MsgCouponValid,
	coupon.StatusInvalid:  locale.MsgCouponInvalid,
	coupon.StatusExpired:  locale.MsgCouponExpired,
	coupon.StatusUsed:     locale.MsgCouponUsed,
	coupon.StatusInactive: locale.MsgCouponInactive,
	coupon.StatusError:    locale.MsgServerError,
}

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
	tr   *locale.Translator
	cfg  config.CouponConfig
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries, tr *locale.Translator, cfg config.CouponConfig) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q, tr: tr, cfg: cfg}
}

// @Summary Validate coupon
// @Description Report whether a scanned coupon can be redeemed. Business rejections are in-band.
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Scanned hash"
// @Success 200 {object} resdto.ValidateCouponResponse
// @Failure 400 {object} resdto.ValidateCouponResponse
// @Failure 500 {object} resdto.ValidateCouponResponse
// @Router /validate-coupon [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, resdto.NewValidateFailure(coupon.StatusInvalid, h.tr.T(c, locale.MsgCouponInvalid)))
		return
	}

	result, err := h.cmds.Validate(c.Request.Context(), req.Hash, req.Provider)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidInput) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, resdto.NewValidateFailure(coupon.StatusInvalid, h.tr.T(c, locale.MsgCouponInvalid)))
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, resdto.NewValidateFailure(coupon.StatusError, h.tr.T(c, locale.MsgServerError)))
		return
	}

	c.JSON(http.StatusOK, resdto.FromValidateResult(result, h.tr.T(c, statusMessages[result.Status])))
}

// @Summary Use coupon
// @Description Consume one use and append a history entry to the acting account
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.UseCouponRequest true "Redemption"
// @Success 200 {object} resdto.UseCouponResponse
// @Failure 400 {object} resdto.MessageResponse
// @Failure 404 {object} resdto.MessageResponse
// @Failure 406 {object} resdto.MessageResponse
// @Failure 409 {object} resdto.MessageResponse
// @Failure 500 {object} resdto.MessageResponse
// @Router /use-coupon [post]
func (h *CouponHandler) Use(c *gin.Context) {
	var req reqdto.UseCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Message(h.tr.T(c, locale.MsgRequestInvalid)))
		return
	}

	result, err := h.cmds.Use(c.Request.Context(), req.ToCommand())
	if err != nil {
		status, msg := http.StatusInternalServerError, locale.MsgServerError
		switch {
		case errs.Is(err, commands.ErrInvalidInput):
			status, msg = http.StatusBadRequest, locale.MsgCouponInvalid
		case errs.Is(err, commands.ErrCouponNotFound):
			status, msg = http.StatusNotFound, locale.MsgCouponInvalid
		case errs.Is(err, commands.ErrAccountNotFound):
			status, msg = http.StatusNotFound, locale.MsgAccountNotFound
		case errs.Is(err, commands.ErrCouponExpired):
			status, msg = http.StatusNotAcceptable, locale.MsgCouponExpired
		case errs.Is(err, commands.ErrCouponUsed):
			status, msg = http.StatusNotAcceptable, locale.MsgCouponUsed
		case errs.Is(err, commands.ErrCouponInactive):
			status, msg = http.StatusNotAcceptable, locale.MsgCouponInactive
		case errs.Is(err, commands.ErrLockNotObtained):
			status, msg = http.StatusConflict, locale.MsgCouponBusy
		}
		httperr.AbortWithError(c, status, err, httperr.Message(h.tr.T(c, msg)))
		return
	}

	c.JSON(http.StatusOK, resdto.UseCouponResponse{
		Status:   resdto.StatusDone,
		UsesLeft: result.UsesLeft,
		Message:  h.tr.T(c, locale.MsgCouponRedeemed, map[string]any{"UsesLeft": result.UsesLeft}),
	})
}

// @Summary Create coupon
// @Description Issue a new active coupon. The hash is returned as QR payload.
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCouponRequest true "Coupon"
// @Success 201 {object} resdto.CreateCouponResponse
// @Failure 400 {object} resdto.CreateCouponResponse
// @Failure 500 {object} resdto.CreateCouponResponse
// @Router /create-active-coupon [post]
func (h *CouponHandler) Create(c *gin.Context) {
	fail := func(status int, err error, msg string) {
		httperr.AbortWithError(c, status, err, resdto.CreateCouponResponse{CouponStatus: resdto.CouponStatusFail, Message: h.tr.T(c, msg)})
	}

	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(http.StatusBadRequest, err, locale.MsgCouponMissing)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errs.Is(err, commands.ErrInvalidInput) {
			fail(http.StatusBadRequest, err, locale.MsgCouponMissing)
			return
		}
		fail(http.StatusInternalServerError, err, locale.MsgServerError)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateCouponResponse{
		CouponStatus: resdto.CouponStatusActive,
		QRData:       result.Hash.String(),
		Message:      h.tr.T(c, locale.MsgCouponCreated),
	})
}

// @Summary List coupons
// @Description Admins see every coupon, providers only the ones they issued
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param q query string false "Title, issuer or recipient substring"
// @Param active_only query bool false "Only active coupons (default true)"
// @Param sort query string false "Title, Expiry or UsesLeft"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} resdto.CouponListResponse
// @Failure 400 {object} resdto.MessageResponse
// @Failure 401 {object} resdto.MessageResponse
// @Failure 403 {object} resdto.MessageResponse
// @Failure 500 {object} resdto.MessageResponse
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.Message(h.tr.T(c, locale.MsgAuthRequired)))
		return
	}

	var query reqdto.ListCouponsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Message(h.tr.T(c, locale.MsgRequestInvalid)))
		return
	}

	page, err := h.q.List(c.Request.Context(), queries.Actor{Username: username, Role: role}, query.ToParams())
	if err != nil {
		if errs.Is(err, queries.ErrForbidden) {
			httperr.AbortWithError(c, http.StatusForbidden, err, httperr.Message(h.tr.T(c, locale.MsgAuthForbidden)))
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.Message(h.tr.T(c, locale.MsgServerError)))
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponPage(page))
}

// @Summary Coupon QR code
// @Description Render the coupon hash as a PNG QR code
// @Tags coupons
// @Produce png
// @Param hash path string true "Coupon hash"
// @Param size query int false "Edge length in pixels"
// @Success 200 {file} binary
// @Failure 400 {object} resdto.MessageResponse
// @Failure 500 {object} resdto.MessageResponse
// @Router /coupons/{hash}/qr [get]
func (h *CouponHandler) QR(c *gin.Context) {
	hash, err := coupon.ParseHash(c.Param("hash"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Message(h.tr.T(c, locale.MsgCouponInvalid)))
		return
	}
	var query reqdto.QRQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Message(h.tr.T(c, locale.MsgRequestInvalid)))
		return
	}
	png, err := qr.PNG(hash.String(), patch.Default(query.Size, h.cfg.QRSize))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.Message(h.tr.T(c, locale.MsgServerError)))
		return
	}
	c.Header("Cache-Control", "private, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}
