package api

import (
	"net/http"

	resdto "do-coupon-system/internal/handler/dto/response"
	"do-coupon-system/internal/handler/httperr"
	"do-coupon-system/internal/handler/middleware"
	"do-coupon-system/internal/pkg/errs"
	"do-coupon-system/internal/pkg/locale"
	"do-coupon-system/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	q  queries.HistoryQueries
	tr *locale.Translator
}

func NewHistoryHandler(q queries.HistoryQueries, tr *locale.Translator) *HistoryHandler {
	return &HistoryHandler{q: q, tr: tr}
}

// @Summary Consumption history
// @Description The caller's consumption records, newest first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param q query string false "Consumer or additional info substring"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 401 {object} resdto.MessageResponse
// @Failure 404 {object} resdto.MessageResponse
// @Failure 500 {object} resdto.MessageResponse
// @Router /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.Message(h.tr.T(c, locale.MsgAuthRequired)))
		return
	}

	items, err := h.q.List(c.Request.Context(), username, c.Query("q"))
	if err != nil {
		if errs.Is(err, queries.ErrAccountNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.Message(h.tr.T(c, locale.MsgAccountNotFound)))
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.Message(h.tr.T(c, locale.MsgServerError)))
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistory(items))
}
