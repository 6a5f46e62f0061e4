package api

import (
	"net/http"

	reqdto "do-coupon-system/internal/handler/dto/request"
	resdto "do-coupon-system/internal/handler/dto/response"
	"do-coupon-system/internal/handler/httperr"
	"do-coupon-system/internal/handler/middleware"
	"do-coupon-system/internal/pkg/errs"
	"do-coupon-system/internal/pkg/locale"
	"do-coupon-system/internal/usecase/commands"
	"do-coupon-system/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	cmds commands.MembershipCommands
	q    queries.MembershipQueries
	tr   *locale.Translator
}

func NewMembershipHandler(cmds commands.MembershipCommands, q queries.MembershipQueries, tr *locale.Translator) *MembershipHandler {
	return &MembershipHandler{cmds: cmds, q: q, tr: tr}
}

// @Summary Record membership deduction
// @Description Append a MembershipDirect entry to the account history. Balances are not checked.
// @Tags membership
// @Accept json
// @Produce json
// @Param request body reqdto.RecordDeductionRequest true "Deduction"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} resdto.MessageResponse
// @Failure 404 {object} resdto.MessageResponse
// @Failure 500 {object} resdto.MessageResponse
// @Router /record-md-deduction [post]
func (h *MembershipHandler) RecordDeduction(c *gin.Context) {
	var req reqdto.RecordDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Message(h.tr.T(c, locale.MsgMemberMissing)))
		return
	}

	if err := h.cmds.RecordDeduction(c.Request.Context(), req.ToCommand()); err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: h.tr.T(c, locale.MsgMemberRecorded)})
}

// @Summary Deduct member points
// @Description Check and update the member balance of the logged-in account, then record the deduction
// @Tags membership
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.DeductPointsRequest true "Deduction"
// @Success 200 {object} resdto.DeductPointsResponse
// @Failure 400 {object} resdto.MessageResponse
// @Failure 401 {object} resdto.MessageResponse
// @Failure 404 {object} resdto.MessageResponse
// @Failure 409 {object} resdto.MessageResponse
// @Failure 422 {object} resdto.MessageResponse
// @Failure 500 {object} resdto.MessageResponse
// @Router /membership/deduct [post]
func (h *MembershipHandler) Deduct(c *gin.Context) {
	username, ok := h.sessionAccount(c)
	if !ok {
		return
	}

	var req reqdto.DeductPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Message(h.tr.T(c, locale.MsgMemberMissing)))
		return
	}

	result, err := h.cmds.DeductPoints(c.Request.Context(), req.ToCommand(username))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DeductPointsResponse{
		Message:       h.tr.T(c, locale.MsgMemberDeducted, map[string]any{"Name": result.MemberName}),
		Point:         result.Point,
		DiscountPoint: result.DiscountPoint,
	})
}

// @Summary Look up member
// @Description Find a member by membership number in the logged-in account's membership collection
// @Tags membership
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.LookupMemberRequest true "Lookup"
// @Success 200 {object} queries.MemberView
// @Failure 400 {object} resdto.MessageResponse
// @Failure 401 {object} resdto.MessageResponse
// @Failure 404 {object} resdto.MessageResponse
// @Failure 409 {object} resdto.MessageResponse
// @Failure 500 {object} resdto.MessageResponse
// @Router /membership/lookup [post]
func (h *MembershipHandler) Lookup(c *gin.Context) {
	username, ok := h.sessionAccount(c)
	if !ok {
		return
	}

	var req reqdto.LookupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Message(h.tr.T(c, locale.MsgMemberMissing)))
		return
	}

	member, err := h.q.Lookup(c.Request.Context(), username, string(req.MembershipNumber))
	if err != nil {
		status, msg := http.StatusInternalServerError, locale.MsgServerError
		switch {
		case errs.Is(err, queries.ErrInvalidLookup):
			status, msg = http.StatusBadRequest, locale.MsgMemberMissing
		case errs.Is(err, queries.ErrAccountNotFound):
			status, msg = http.StatusNotFound, locale.MsgAccountNotFound
		case errs.Is(err, queries.ErrNoMembershipCollection):
			status, msg = http.StatusNotFound, locale.MsgMemberNoCollection
		case errs.Is(err, queries.ErrMemberNotFound):
			status, msg = http.StatusNotFound, locale.MsgMemberNotFound
		case errs.Is(err, queries.ErrMemberAmbiguous):
			status, msg = http.StatusConflict, locale.MsgMemberAmbiguous
		}
		httperr.AbortWithError(c, status, err, httperr.Message(h.tr.T(c, msg)))
		return
	}
	c.JSON(http.StatusOK, member)
}

// sessionAccount returns the logged-in account name. Sessions without a
// membership collection are rejected before any store call.
func (h *MembershipHandler) sessionAccount(c *gin.Context) (string, bool) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.Message(h.tr.T(c, locale.MsgAuthRequired)))
		return "", false
	}
	if middleware.GetMembershipField(c) == "" {
		httperr.AbortWithError(c, http.StatusNotFound, nil, httperr.Message(h.tr.T(c, locale.MsgMemberNoCollection)))
		return "", false
	}
	return username, true
}

func (h *MembershipHandler) abort(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, locale.MsgServerError
	switch {
	case errs.Is(err, commands.ErrInvalidInput):
		status, msg = http.StatusBadRequest, locale.MsgMemberMissing
	case errs.Is(err, commands.ErrAccountNotFound):
		status, msg = http.StatusNotFound, locale.MsgAccountNotFound
	case errs.Is(err, commands.ErrNoMembershipCollection):
		status, msg = http.StatusNotFound, locale.MsgMemberNoCollection
	case errs.Is(err, commands.ErrMemberNotFound):
		status, msg = http.StatusNotFound, locale.MsgMemberNotFound
	case errs.Is(err, commands.ErrMemberAmbiguous):
		status, msg = http.StatusConflict, locale.MsgMemberAmbiguous
	case errs.Is(err, commands.ErrLockNotObtained):
		status, msg = http.StatusConflict, locale.MsgCouponBusy
	case errs.Is(err, commands.ErrInvalidDeduction):
		status, msg = http.StatusUnprocessableEntity, locale.MsgMemberInsufficient
	}
	httperr.AbortWithError(c, status, err, httperr.Message(h.tr.T(c, msg)))
}
