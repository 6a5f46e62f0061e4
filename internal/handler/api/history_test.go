//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"do-coupon-system/internal/handler/api"
	resdto "do-coupon-system/internal/handler/dto/response"
	"do-coupon-system/internal/pkg/errs"
	"do-coupon-system/internal/usecase/queries"
	"do-coupon-system/tests/common/httptest"
	queriesmock "do-coupon-system/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HistoryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockHistoryQueries
}

func (s *HistoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockHistoryQueries(s.mockCtrl)
	handler := api.NewHistoryHandler(s.mockQueries, newTranslator(s.T()))

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("username", "provA")
		}
		c.Next()
	}
	s.router.GET("/history", authMiddleware, handler.List)
}

func (s *HistoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHistoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(HistoryHandlerTestSuite))
}

func (s *HistoryHandlerTestSuite) TestList() {
	items := []queries.HistoryItem{
		{Consumer: "alice", Provider: "provA", Platform: "CouponSystem", Time: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Amount: 1, AdditionalInfo: "Coffee"},
	}

	s.Run("success: lists the caller's history with the search term", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "provA", "ali").Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history?q=ali", nil, "token")
		var body resdto.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(items, body.Items)
	})

	s.Run("success: empty history renders an empty list", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "provA", "").Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[]}`, rec.Body.String())
	})

	s.Run("error: 401 without identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Please log in first")
	})

	s.Run("error: 404 when the account is gone", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrAccountNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Account not found")
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("boom"), queries.ErrStoreUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Server error")
	})
}
