package commands

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/domain/membership"
	"do-coupon-system/internal/infra"
	"do-coupon-system/internal/pkg/clock"
	"do-coupon-system/internal/pkg/errs"
)

//go:generate mockgen -source=membership.go -destination=../../../tests/mock/commands/membership_mock.go -package=commandsmock

var (
	ErrNoMembershipCollection = errs.New("account has no membership collection")
	ErrMemberNotFound         = errs.New("member not found")
	ErrMemberAmbiguous        = errs.New("member not unique")
	ErrInvalidDeduction       = errs.New("invalid deduction")
)

const (
	OpRecordDeduction = "record_md_deduction"
	OpDeductPoints    = "deduct_points"
)

type RecordDeductionRequest struct {
	Amount      float64
	Discount    float64
	Account     string
	MemberName  string
	MemberEmail string
	Notes       string
}

type DeductPointsRequest struct {
	Account     string
	MemberEmail string
	Amount      float64
	Discount    float64
	Notes       string
}

type DeductPointsResult struct {
	MemberName    string
	Point         float64
	DiscountPoint float64
}

type MembershipCommands interface {
	RecordDeduction(ctx context.Context, req RecordDeductionRequest) error
	DeductPoints(ctx context.Context, req DeductPointsRequest) (*DeductPointsResult, error)
}

type membershipCommandsImpl struct {
	accounts AccountRepository
	members  MemberRepository
	locker   RedemptionLocker
	notifier Notifier
	outcomes OutcomeRecorder
	clock    clock.Clock
}

func NewMembershipCommands(accounts AccountRepository, members MemberRepository, locker RedemptionLocker, notifier Notifier, outcomes OutcomeRecorder, clk clock.Clock) MembershipCommands {
	return &membershipCommandsImpl{
		accounts: accounts,
		members:  members,
		locker:   locker,
		notifier: notifier,
		outcomes: outcomes,
		clock:    clk,
	}
}

// RecordDeduction appends a history entry only. Balances are not checked.
func (uc *membershipCommandsImpl) RecordDeduction(ctx context.Context, req RecordDeductionRequest) error {
	if strings.TrimSpace(req.Account) == "" || strings.TrimSpace(req.MemberName) == "" {
		uc.outcomes.Outcome(OpRecordDeduction, "invalid")
		return errs.Mark(errs.New("account and member_name are required"), ErrInvalidInput)
	}

	acc, err := uc.resolveAccount(ctx, strings.TrimSpace(req.Account))
	if err != nil {
		uc.outcomes.Outcome(OpRecordDeduction, "error")
		return err
	}

	rec, err := account.NewRecord(req.MemberName, acc.Name(), account.PlatformMembershipDirect, uc.clock.Now(), req.Amount, req.Notes)
	if err != nil {
		uc.outcomes.Outcome(OpRecordDeduction, "invalid")
		return errs.Mark(err, ErrInvalidInput)
	}
	acc.Append(rec)

	if err := uc.accounts.SaveHistory(ctx, acc); err != nil {
		uc.outcomes.Outcome(OpRecordDeduction, "error")
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrAccountNotFound)
		}
		return errs.Mark(err, ErrStoreUnavailable)
	}
	uc.outcomes.Outcome(OpRecordDeduction, "done")

	uc.notifier.Notify(Notification{
		Kind: NotificationPointsDeducted,
		To:   strings.TrimSpace(req.MemberEmail),
		Data: map[string]any{
			"account":     acc.Name(),
			"member_name": req.MemberName,
			"amount":      req.Amount,
			"discount":    req.Discount,
			"notes":       req.Notes,
		},
	})
	return nil
}

// DeductPoints re-reads the member, applies the balance rules and records the
// deduction. Concurrent deductions for one member are serialised.
func (uc *membershipCommandsImpl) DeductPoints(ctx context.Context, req DeductPointsRequest) (*DeductPointsResult, error) {
	email := strings.TrimSpace(req.MemberEmail)
	if strings.TrimSpace(req.Account) == "" || email == "" || strings.TrimSpace(req.Notes) == "" {
		uc.outcomes.Outcome(OpDeductPoints, "invalid")
		return nil, errs.Mark(errs.New("account, member_email and notes are required"), ErrInvalidInput)
	}
	d, err := membership.NewDeduction(req.Amount, req.Discount)
	if err != nil {
		uc.outcomes.Outcome(OpDeductPoints, "invalid")
		return nil, errs.Mark(err, ErrInvalidDeduction)
	}

	acc, err := uc.resolveAccount(ctx, strings.TrimSpace(req.Account))
	if err != nil {
		uc.outcomes.Outcome(OpDeductPoints, "error")
		return nil, err
	}
	collection := strings.TrimSpace(acc.MembershipField())
	if collection == "" {
		uc.outcomes.Outcome(OpDeductPoints, "invalid")
		return nil, ErrNoMembershipCollection
	}

	unlock, err := uc.locker.Lock(ctx, "member:"+collection+":"+email)
	if err != nil {
		uc.outcomes.Outcome(OpDeductPoints, "locked")
		if errs.Is(err, ErrLockNotObtained) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	defer unlock()

	members, err := uc.members.FindByEmail(ctx, collection, email)
	if err != nil {
		uc.outcomes.Outcome(OpDeductPoints, "error")
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNoMembershipCollection)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	switch len(members) {
	case 0:
		uc.outcomes.Outcome(OpDeductPoints, "not_found")
		return nil, ErrMemberNotFound
	case 1:
	default:
		uc.outcomes.Outcome(OpDeductPoints, "ambiguous")
		return nil, ErrMemberAmbiguous
	}

	m := members[0]
	if err := m.Apply(d); err != nil {
		uc.outcomes.Outcome(OpDeductPoints, "insufficient")
		return nil, errs.Mark(err, ErrInvalidDeduction)
	}
	if err := uc.members.SaveBalance(ctx, collection, m); err != nil {
		uc.outcomes.Outcome(OpDeductPoints, "error")
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	uc.outcomes.Outcome(OpDeductPoints, "done")

	err = uc.RecordDeduction(ctx, RecordDeductionRequest{
		Amount:      d.Total(),
		Discount:    d.Discount(),
		Account:     acc.Name(),
		MemberName:  m.DisplayName(),
		MemberEmail: m.Email(),
		Notes:       deductionNotes(req.Notes, d.Discount()),
	})
	if err != nil {
		return nil, err
	}

	return &DeductPointsResult{
		MemberName:    m.DisplayName(),
		Point:         m.Point(),
		DiscountPoint: m.DiscountPoint(),
	}, nil
}

func (uc *membershipCommandsImpl) resolveAccount(ctx context.Context, name string) (*account.Account, error) {
	accounts, err := uc.accounts.FindByName(ctx, name)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if len(accounts) != 1 {
		if len(accounts) > 1 {
			slog.Error("multiple accounts share one name", slog.String("account", name), slog.Int("matches", len(accounts)))
		}
		return nil, errs.Mark(errs.Newf("%d accounts named %q", len(accounts), name), ErrAccountNotFound)
	}
	return accounts[0], nil
}

func deductionNotes(purpose string, discount float64) string {
	return strings.TrimSpace(purpose) + "（Discounted: " + strconv.FormatFloat(discount, 'f', -1, 64) + "）"
}
