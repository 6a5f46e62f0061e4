//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/domain/membership"
	"do-coupon-system/internal/handler/api"
	resdto "do-coupon-system/internal/handler/dto/response"
	"do-coupon-system/internal/handler/middleware"
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/pkg/errs"
	"do-coupon-system/internal/pkg/jwt"
	"do-coupon-system/internal/usecase/commands"
	"do-coupon-system/internal/usecase/queries"
	"do-coupon-system/tests/common/authtest"
	"do-coupon-system/tests/common/builder"
	"do-coupon-system/tests/common/httptest"
	"do-coupon-system/tests/common/testutil"
	commandsmock "do-coupon-system/tests/mock/commands"
	queriesmock "do-coupon-system/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MembershipHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMembershipCommands
	mockQueries  *queriesmock.MockMembershipQueries
	handler      *api.MembershipHandler
	providerTok  string
	noListTok    string
}

func (s *MembershipHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMembershipCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMembershipQueries(s.mockCtrl)
	tr := newTranslator(s.T())
	s.handler = api.NewMembershipHandler(s.mockCommands, s.mockQueries, tr)

	cfg := config.NewTestConfig()
	auth := middleware.NewAuthMiddleware(jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration), tr)
	tokens := authtest.NewJWTHelper(cfg.JWT)
	s.providerTok = tokens.GenerateToken(s.T(), "provA", account.RoleProvider, "members")
	s.noListTok = tokens.GenerateToken(s.T(), "provB", account.RoleProvider, "")

	s.router.POST("/record-md-deduction", s.handler.RecordDeduction)
	s.router.POST("/membership/deduct", auth.RequireAuth(), s.handler.Deduct)
	s.router.POST("/membership/lookup", auth.RequireAuth(), s.handler.Lookup)
}

func (s *MembershipHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMembershipHandlerSuite(t *testing.T) {
	suite.Run(t, new(MembershipHandlerTestSuite))
}

// commandErrorCases is shared by both write endpoints.
var commandErrorCases = []struct {
	name           string
	commandsError  error
	expectedStatus int
	expectedMsg    string
}{
	{name: "invalid input", commandsError: errs.Mark(errors.New("blank"), commands.ErrInvalidInput), expectedStatus: http.StatusBadRequest, expectedMsg: "required fields"},
	{name: "account missing", commandsError: errs.Mark(errors.New("0 accounts"), commands.ErrAccountNotFound), expectedStatus: http.StatusNotFound, expectedMsg: "Account not found"},
	{name: "no membership list", commandsError: commands.ErrNoMembershipCollection, expectedStatus: http.StatusNotFound, expectedMsg: "no membership list"},
	{name: "member missing", commandsError: commands.ErrMemberNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Member not found"},
	{name: "member ambiguous", commandsError: commands.ErrMemberAmbiguous, expectedStatus: http.StatusConflict, expectedMsg: "More than one member"},
	{name: "lock timeout", commandsError: commands.ErrLockNotObtained, expectedStatus: http.StatusConflict, expectedMsg: "please retry"},
	{name: "insufficient balance", commandsError: errs.Mark(membership.ErrInsufficientPoints, commands.ErrInvalidDeduction), expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Insufficient points"},
	{name: "store down", commandsError: errs.Mark(errors.New("502"), commands.ErrStoreUnavailable), expectedStatus: http.StatusInternalServerError, expectedMsg: "Server error"},
}

// ================================================================================
// TestRecordDeduction
// ================================================================================

func (s *MembershipHandlerTestSuite) TestRecordDeduction() {
	url := "/record-md-deduction"
	reqBody := builder.NewMemberBuilder().BuildRecordRequestDTO("provA", 12.5)

	s.Run("success: records the entry", func() {
		s.mockCommands.EXPECT().RecordDeduction(gomock.Any(), commands.RecordDeductionRequest{
			Amount:      12.5,
			Account:     "provA",
			MemberName:  "Alice",
			MemberEmail: "alice@example.com",
			Notes:       "Lunch",
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		var body resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Deduction recorded", body.Message)
	})

	s.Run("zero amount is accepted by binding", func() {
		s.mockCommands.EXPECT().RecordDeduction(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("amount", 0)), "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"amount", "account", "member_name"} {
			s.Run(field, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil)), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "required fields")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		for _, tc := range commandErrorCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RecordDeduction(gomock.Any(), gomock.Any()).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDeduct
// ================================================================================

func (s *MembershipHandlerTestSuite) TestDeduct() {
	url := "/membership/deduct"
	reqBody := builder.NewMemberBuilder().BuildDeductRequestDTO(30, 10)

	s.Run("success: returns the new balances", func() {
		s.mockCommands.EXPECT().DeductPoints(gomock.Any(), commands.DeductPointsRequest{
			Account:     "provA",
			MemberEmail: "alice@example.com",
			Amount:      30,
			Discount:    10,
			Notes:       "Lunch",
		}).Return(&commands.DeductPointsResult{MemberName: "Alice", Point: 80, DiscountPoint: 10}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.providerTok)
		var body resdto.DeductPointsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Points deducted for Alice", body.Message)
		s.InDelta(80, body.Point, 0.001)
		s.InDelta(10, body.DiscountPoint, 0.001)
	})

	s.Run("account comes from the session, not the body", func() {
		s.mockCommands.EXPECT().DeductPoints(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.DeductPointsRequest) (*commands.DeductPointsResult, error) {
				s.Equal("provA", req.Account)
				return &commands.DeductPointsResult{MemberName: "Alice"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("account", "victim")), s.providerTok)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "log in")
	})

	s.Run("error: 401 with a forged token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "log in")
	})

	s.Run("error: 404 when the session has no membership list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.noListTok)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "no membership list")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := map[string]func(map[string]any){
			"missing member_email": testutil.Field("member_email", nil),
			"malformed email":      testutil.Field("member_email", "alice"),
			"missing amount":       testutil.Field("amount", nil),
			"missing notes":        testutil.Field("notes", nil),
			"amount as text":       testutil.Field("amount", "thirty"),
		}
		for name, mutate := range cases {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, mutate), s.providerTok)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "required fields")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		for _, tc := range commandErrorCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().DeductPoints(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.providerTok)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestLookup
// ================================================================================

func (s *MembershipHandlerTestSuite) TestLookup() {
	url := "/membership/lookup"
	view := &queries.MemberView{MembershipNumber: "1001", Name: "Alice", DisplayName: "Alice", Email: "alice@example.com", Point: 100, DiscountPoint: 20}

	s.Run("success: accepts string and numeric membership numbers", func() {
		for name, number := range map[string]any{"string": "1001", "number": 1001} {
			s.Run(name, func() {
				s.mockQueries.EXPECT().Lookup(gomock.Any(), "provA", "1001").Return(view, nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					map[string]any{"membership_number": number}, s.providerTok)
				var body queries.MemberView
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
				s.Equal(*view, body)
			})
		}
	})

	s.Run("body account is ignored", func() {
		s.mockQueries.EXPECT().Lookup(gomock.Any(), "provA", "1001").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"account": "victim", "membership_number": "1001"}, s.providerTok)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"membership_number": "1001"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "log in")
	})

	s.Run("error: 400 when the number is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, s.providerTok)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "required fields")
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queryError     error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "blank lookup", queryError: queries.ErrInvalidLookup, expectedStatus: http.StatusBadRequest, expectedMsg: "required fields"},
			{name: "account missing", queryError: queries.ErrAccountNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Account not found"},
			{name: "no membership list", queryError: queries.ErrNoMembershipCollection, expectedStatus: http.StatusNotFound, expectedMsg: "no membership list"},
			{name: "member missing", queryError: queries.ErrMemberNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Member not found"},
			{name: "member ambiguous", queryError: queries.ErrMemberAmbiguous, expectedStatus: http.StatusConflict, expectedMsg: "More than one member"},
			{name: "store down", queryError: errs.Mark(errors.New("boom"), queries.ErrStoreUnavailable), expectedStatus: http.StatusInternalServerError, expectedMsg: "Server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Lookup(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.queryError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					map[string]any{"membership_number": "1001"}, s.providerTok)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
