//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/domain/membership"
	"do-coupon-system/internal/infra"
	"do-coupon-system/internal/pkg/clock"
	"do-coupon-system/internal/pkg/errs"
	"do-coupon-system/internal/usecase/commands"
	"do-coupon-system/tests/common/builder"
	commandsmock "do-coupon-system/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MembershipCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	accounts *commandsmock.MockAccountRepository
	members  *commandsmock.MockMemberRepository
	locker   *commandsmock.MockRedemptionLocker
	notifier *commandsmock.MockNotifier
	cmds     commands.MembershipCommands
}

func (s *MembershipCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.accounts = commandsmock.NewMockAccountRepository(s.mockCtrl)
	s.members = commandsmock.NewMockMemberRepository(s.mockCtrl)
	s.locker = commandsmock.NewMockRedemptionLocker(s.mockCtrl)
	s.notifier = commandsmock.NewMockNotifier(s.mockCtrl)

	outcomes := commandsmock.NewMockOutcomeRecorder(s.mockCtrl)
	outcomes.EXPECT().Outcome(gomock.Any(), gomock.Any()).AnyTimes()

	s.cmds = commands.NewMembershipCommands(s.accounts, s.members, s.locker, s.notifier, outcomes, clock.NewMockClock(now))
}

func (s *MembershipCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMembershipCommandsSuite(t *testing.T) {
	suite.Run(t, new(MembershipCommandsTestSuite))
}

func (s *MembershipCommandsTestSuite) provider(field string) *account.Account {
	return builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) { b.MembershipField = field }).BuildDomain()
}

// ================================================================================
// TestRecordDeduction
// ================================================================================

func (s *MembershipCommandsTestSuite) TestRecordDeduction() {
	ctx := context.Background()
	req := commands.RecordDeductionRequest{Amount: 12.5, Account: "provA", MemberName: "Alice", MemberEmail: "alice@example.com", Notes: "Lunch"}

	s.Run("success: appends a direct deduction entry", func() {
		acc := s.provider("members")
		s.accounts.EXPECT().FindByName(gomock.Any(), "provA").Return([]*account.Account{acc}, nil)
		s.accounts.EXPECT().SaveHistory(gomock.Any(), acc).Return(nil)
		s.notifier.EXPECT().Notify(gomock.Any()).Do(func(n commands.Notification) {
			s.Equal(commands.NotificationPointsDeducted, n.Kind)
			s.Equal("alice@example.com", n.To)
		})

		s.Require().NoError(s.cmds.RecordDeduction(ctx, req))
		history := acc.History()
		s.Require().Len(history, 1)
		s.Equal(account.Record{
			Consumer:       "Alice",
			Provider:       "provA",
			Platform:       account.PlatformMembershipDirect,
			Time:           now,
			Amount:         12.5,
			AdditionalInfo: "Lunch",
		}, history[0])
	})

	s.Run("error: blank account or member", func() {
		for _, bad := range []commands.RecordDeductionRequest{
			{Amount: 1, Account: " ", MemberName: "Alice"},
			{Amount: 1, Account: "provA", MemberName: ""},
		} {
			err := s.cmds.RecordDeduction(ctx, bad)
			s.True(errs.Is(err, commands.ErrInvalidInput), "got %v", err)
		}
	})

	s.Run("error: account not unique", func() {
		s.accounts.EXPECT().FindByName(gomock.Any(), "provA").Return([]*account.Account{s.provider(""), s.provider("")}, nil)

		err := s.cmds.RecordDeduction(ctx, req)
		s.True(errs.Is(err, commands.ErrAccountNotFound), "got %v", err)
	})

	s.Run("error: history write fails", func() {
		s.accounts.EXPECT().FindByName(gomock.Any(), "provA").Return([]*account.Account{s.provider("")}, nil)
		s.accounts.EXPECT().SaveHistory(gomock.Any(), gomock.Any()).Return(infra.WrapRepoErr("update", errors.New("502")))

		err := s.cmds.RecordDeduction(ctx, req)
		s.True(errs.Is(err, commands.ErrStoreUnavailable), "got %v", err)
	})
}

// ================================================================================
// TestDeductPoints
// ================================================================================

func (s *MembershipCommandsTestSuite) TestDeductPoints() {
	ctx := context.Background()
	req := commands.DeductPointsRequest{Account: "provA", MemberEmail: "alice@example.com", Amount: 30, Discount: 10, Notes: "Lunch"}

	s.Run("success: updates balances then records history", func() {
		acc := s.provider("members")
		member := builder.NewMemberBuilder().BuildDomain()
		released := false

		gomock.InOrder(
			s.accounts.EXPECT().FindByName(gomock.Any(), "provA").Return([]*account.Account{acc}, nil),
			s.locker.EXPECT().Lock(gomock.Any(), "member:members:alice@example.com").Return(func() { released = true }, nil),
			s.members.EXPECT().FindByEmail(gomock.Any(), "members", "alice@example.com").Return([]*membership.Member{member}, nil),
			s.members.EXPECT().SaveBalance(gomock.Any(), "members", member).Return(nil),
			s.accounts.EXPECT().FindByName(gomock.Any(), "provA").Return([]*account.Account{acc}, nil),
			s.accounts.EXPECT().SaveHistory(gomock.Any(), acc).Return(nil),
		)
		s.notifier.EXPECT().Notify(gomock.Any())

		got, err := s.cmds.DeductPoints(ctx, req)
		s.Require().NoError(err)
		s.Equal(&commands.DeductPointsResult{MemberName: "Alice", Point: 80, DiscountPoint: 10}, got)
		s.True(released)

		history := acc.History()
		s.Require().Len(history, 1)
		s.Equal(30.0, history[0].Amount)
		s.Equal("Lunch（Discounted: 10）", history[0].AdditionalInfo)
		s.Equal(account.PlatformMembershipDirect, history[0].Platform)
	})

	s.Run("error: invalid input", func() {
		for name, mutate := range map[string]func(*commands.DeductPointsRequest){
			"blank account": func(r *commands.DeductPointsRequest) { r.Account = "" },
			"blank email":   func(r *commands.DeductPointsRequest) { r.MemberEmail = " " },
			"blank notes":   func(r *commands.DeductPointsRequest) { r.Notes = "" },
		} {
			s.Run(name, func() {
				bad := req
				mutate(&bad)
				_, err := s.cmds.DeductPoints(ctx, bad)
				s.True(errs.Is(err, commands.ErrInvalidInput), "got %v", err)
			})
		}
	})

	s.Run("error: invalid amounts never reach the store", func() {
		for name, amounts := range map[string][2]float64{
			"negative amount":   {-1, 0},
			"negative discount": {10, -1},
			"both zero":         {0, 0},
		} {
			s.Run(name, func() {
				bad := req
				bad.Amount, bad.Discount = amounts[0], amounts[1]
				_, err := s.cmds.DeductPoints(ctx, bad)
				s.True(errs.Is(err, commands.ErrInvalidDeduction), "got %v", err)
			})
		}
	})

	s.Run("error: account without a membership collection", func() {
		s.accounts.EXPECT().FindByName(gomock.Any(), "provA").Return([]*account.Account{s.provider("")}, nil)

		_, err := s.cmds.DeductPoints(ctx, req)
		s.True(errs.Is(err, commands.ErrNoMembershipCollection), "got %v", err)
	})

	s.Run("error: member lookup outcomes", func() {
		testCases := []struct {
			name    string
			members []*membership.Member
			findErr error
			want    error
		}{
			{name: "no member", want: commands.ErrMemberNotFound},
			{name: "two members", members: []*membership.Member{builder.NewMemberBuilder().BuildDomain(), builder.NewMemberBuilder().BuildDomain()}, want: commands.ErrMemberAmbiguous},
			{name: "collection missing", findErr: infra.WrapRepoErr("find", nil, infra.KindNotFound), want: commands.ErrNoMembershipCollection},
			{name: "store down", findErr: infra.WrapRepoErr("find", errors.New("502")), want: commands.ErrStoreUnavailable},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.accounts.EXPECT().FindByName(gomock.Any(), "provA").Return([]*account.Account{s.provider("members")}, nil)
				s.locker.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(func() {}, nil)
				s.members.EXPECT().FindByEmail(gomock.Any(), "members", "alice@example.com").Return(tc.members, tc.findErr)

				_, err := s.cmds.DeductPoints(ctx, req)
				s.True(errs.Is(err, tc.want), "got %v", err)
			})
		}
	})

	s.Run("error: insufficient balance leaves the member unchanged", func() {
		member := builder.NewMemberBuilder().With(func(b *builder.MemberBuilder) { b.DiscountPoint = 5 }).BuildDomain()
		s.accounts.EXPECT().FindByName(gomock.Any(), "provA").Return([]*account.Account{s.provider("members")}, nil)
		s.locker.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(func() {}, nil)
		s.members.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*membership.Member{member}, nil)

		_, err := s.cmds.DeductPoints(ctx, req)
		s.True(errs.Is(err, commands.ErrInvalidDeduction), "got %v", err)
		s.Equal(100.0, member.Point())
		s.Equal(5.0, member.DiscountPoint())
	})

	s.Run("error: lock not obtained", func() {
		s.accounts.EXPECT().FindByName(gomock.Any(), "provA").Return([]*account.Account{s.provider("members")}, nil)
		s.locker.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(nil, commands.ErrLockNotObtained)

		_, err := s.cmds.DeductPoints(ctx, req)
		s.True(errs.Is(err, commands.ErrLockNotObtained), "got %v", err)
	})
}
