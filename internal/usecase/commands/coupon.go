package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/domain/coupon"
	"do-coupon-system/internal/infra"
	"do-coupon-system/internal/pkg/clock"
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/commands/coupon_mock.go -package=commandsmock

var (
	ErrInvalidInput     = errs.New("invalid input")
	ErrCouponNotFound   = errs.New("coupon not found")
	ErrCouponExpired    = errs.New("coupon expired")
	ErrCouponUsed       = errs.New("coupon used up")
	ErrCouponInactive   = errs.New("coupon inactive")
	ErrAccountNotFound  = errs.New("account not found")
	ErrStoreUnavailable = errs.New("record store unavailable")
)

const (
	OpValidateCoupon = "validate_coupon"
	OpUseCoupon      = "use_coupon"
	OpCreateCoupon   = "create_coupon"
)

type ValidateResult struct {
	Status      coupon.Status
	Title       string
	Description string
	UsesLeft    int
}

type UseCouponRequest struct {
	Hash     string
	Username string
	Provider string
}

type UseCouponResult struct {
	UsesLeft int
}

type CreateCouponRequest struct {
	Title        string
	Description  string
	Expiry       string
	AssignedFrom string
	AssignedTo   string
	Email        string
	Contact      string
}

type CreateCouponResult struct {
	Hash coupon.Hash
}

type CouponCommands interface {
	Validate(ctx context.Context, hash, provider string) (*ValidateResult, error)
	Use(ctx context.Context, req UseCouponRequest) (*UseCouponResult, error)
	Create(ctx context.Context, req CreateCouponRequest) (*CreateCouponResult, error)
}

type couponCommandsImpl struct {
	coupons    CouponRepository
	accounts   AccountRepository
	locker     RedemptionLocker
	reconciler ReconciliationRecorder
	notifier   Notifier
	outcomes   OutcomeRecorder
	background Background
	clock      clock.Clock
	cfg        config.CouponConfig
}

type CouponDeps struct {
	Coupons    CouponRepository
	Accounts   AccountRepository
	Locker     RedemptionLocker
	Reconciler ReconciliationRecorder
	Notifier   Notifier
	Outcomes   OutcomeRecorder
	Background Background
	Clock      clock.Clock
	Config     config.CouponConfig
}

func NewCouponCommands(d CouponDeps) CouponCommands {
	return &couponCommandsImpl{
		coupons:    d.Coupons,
		accounts:   d.Accounts,
		locker:     d.Locker,
		reconciler: d.Reconciler,
		notifier:   d.Notifier,
		outcomes:   d.Outcomes,
		background: d.Background,
		clock:      d.Clock,
		cfg:        d.Config,
	}
}

// Validate never mutates the coupon except for deactivating one found expired,
// which happens in the background.
func (uc *couponCommandsImpl) Validate(ctx context.Context, rawHash, provider string) (*ValidateResult, error) {
	hash, err := coupon.ParseHash(rawHash)
	if err != nil {
		uc.outcomes.Outcome(OpValidateCoupon, coupon.StatusInvalid.String())
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	c, err := uc.coupons.FindByHash(ctx, hash, strings.TrimSpace(provider))
	if err != nil {
		if isMissing(err) {
			uc.outcomes.Outcome(OpValidateCoupon, coupon.StatusInvalid.String())
			return &ValidateResult{Status: coupon.StatusInvalid}, nil
		}
		uc.outcomes.Outcome(OpValidateCoupon, coupon.StatusError.String())
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	status := c.Evaluate(uc.clock.Now())
	uc.outcomes.Outcome(OpValidateCoupon, status.String())

	switch status {
	case coupon.StatusExpired:
		if c.Active() {
			c.Deactivate()
			uc.background.Go("deactivate expired coupon", func(ctx context.Context) error {
				return uc.coupons.SaveState(ctx, c)
			})
		}
		return &ValidateResult{Status: status}, nil
	case coupon.StatusValid:
		return &ValidateResult{
			Status:      status,
			Title:       c.Title(),
			Description: c.Description(),
			UsesLeft:    c.UsesLeft(),
		}, nil
	default:
		return &ValidateResult{Status: status}, nil
	}
}

// Use consumes one use and appends a history entry to the acting account.
// A failure after the coupon write is not rolled back; it is handed to the
// reconciler instead.
func (uc *couponCommandsImpl) Use(ctx context.Context, req UseCouponRequest) (*UseCouponResult, error) {
	hash, err := coupon.ParseHash(req.Hash)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, errs.Mark(errs.New("username is required"), ErrInvalidInput)
	}

	unlock, err := uc.locker.Lock(ctx, hash.String())
	if err != nil {
		uc.outcomes.Outcome(OpUseCoupon, "locked")
		if errs.Is(err, ErrLockNotObtained) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	defer unlock()

	c, err := uc.coupons.FindByHash(ctx, hash, strings.TrimSpace(req.Provider))
	if err != nil {
		if isMissing(err) {
			uc.outcomes.Outcome(OpUseCoupon, coupon.StatusInvalid.String())
			return nil, errs.Mark(err, ErrCouponNotFound)
		}
		uc.outcomes.Outcome(OpUseCoupon, coupon.StatusError.String())
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	now := uc.clock.Now()
	switch status := c.Evaluate(now); status {
	case coupon.StatusExpired:
		uc.outcomes.Outcome(OpUseCoupon, status.String())
		if c.Active() {
			c.Deactivate()
			if serr := uc.coupons.SaveState(ctx, c); serr != nil {
				slog.Warn("failed to deactivate expired coupon", slog.String("hash", hash.String()), slog.String("error", serr.Error()))
			}
		}
		return nil, ErrCouponExpired
	case coupon.StatusUsed:
		uc.outcomes.Outcome(OpUseCoupon, status.String())
		return nil, ErrCouponUsed
	case coupon.StatusInactive:
		uc.outcomes.Outcome(OpUseCoupon, status.String())
		return nil, ErrCouponInactive
	}

	if err := c.Redeem(now); err != nil {
		return nil, errs.Mark(err, ErrCouponInactive)
	}
	if err := uc.coupons.SaveState(ctx, c); err != nil {
		uc.outcomes.Outcome(OpUseCoupon, coupon.StatusError.String())
		if isMissing(err) {
			return nil, errs.Mark(err, ErrCouponNotFound)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	if err := uc.appendHistory(ctx, c, username, now); err != nil {
		uc.outcomes.Outcome(OpUseCoupon, "partial")
		uc.reconcile(ctx, c, username, err, now)
		return nil, err
	}

	uc.outcomes.Outcome(OpUseCoupon, "done")
	return &UseCouponResult{UsesLeft: c.UsesLeft()}, nil
}

func (uc *couponCommandsImpl) appendHistory(ctx context.Context, c *coupon.Coupon, username string, now time.Time) error {
	accounts, err := uc.accounts.FindByName(ctx, username)
	if err != nil {
		return errs.Mark(err, ErrStoreUnavailable)
	}
	if len(accounts) != 1 {
		if len(accounts) > 1 {
			slog.Error("multiple accounts share one name", slog.String("username", username), slog.Int("matches", len(accounts)))
		}
		return errs.Mark(errs.Newf("account %q not resolvable", username), ErrAccountNotFound)
	}

	acc := accounts[0]
	acc.Append(account.Record{
		Consumer:       c.AssignedTo(),
		Provider:       c.AssignedFrom(),
		Platform:       account.PlatformCouponSystem,
		Time:           now,
		Amount:         1,
		AdditionalInfo: c.Title(),
	})
	if err := uc.accounts.SaveHistory(ctx, acc); err != nil {
		if isMissing(err) {
			return errs.Mark(err, ErrAccountNotFound)
		}
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return nil
}

func (uc *couponCommandsImpl) reconcile(ctx context.Context, c *coupon.Coupon, username string, cause error, now time.Time) {
	task := ReconciliationTask{
		ID:       uuid.New(),
		CouponID: c.ID(),
		Hash:     c.Hash().String(),
		Username: username,
		Reason:   cause.Error(),
		At:       now,
	}
	if err := uc.reconciler.Record(context.WithoutCancel(ctx), task); err != nil {
		slog.Error("failed to record reconciliation task", slog.String("task_id", task.ID.String()), slog.String("error", err.Error()))
	}
}

func (uc *couponCommandsImpl) Create(ctx context.Context, req CreateCouponRequest) (*CreateCouponResult, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Expiry) == "" ||
		strings.TrimSpace(req.AssignedFrom) == "" || strings.TrimSpace(req.AssignedTo) == "" {
		uc.outcomes.Outcome(OpCreateCoupon, "fail")
		return nil, errs.Mark(errs.New("title, expiry, assigned_from and assigned_to are required"), ErrInvalidInput)
	}

	expiry, err := coupon.ParseExpiry(req.Expiry, uc.cfg.Location())
	if err != nil {
		uc.outcomes.Outcome(OpCreateCoupon, "fail")
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	uses := uc.cfg.DefaultUses
	if uses <= 0 {
		uses = 1
	}
	c, err := coupon.New(req.Title, req.Description, expiry, req.AssignedFrom, req.AssignedTo, uses, strings.TrimSpace(req.Contact))
	if err != nil {
		uc.outcomes.Outcome(OpCreateCoupon, "fail")
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	if err := uc.coupons.Create(ctx, c); err != nil {
		uc.outcomes.Outcome(OpCreateCoupon, "error")
		if infra.IsKind(err, infra.KindInvalidPayload) {
			return nil, errs.Mark(err, ErrInvalidInput)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	uc.outcomes.Outcome(OpCreateCoupon, "active")

	if email := strings.TrimSpace(req.Email); email != "" {
		uc.notifier.Notify(Notification{
			Kind: NotificationCouponIssued,
			To:   email,
			Data: map[string]any{
				"hash":          c.Hash().String(),
				"title":         c.Title(),
				"description":   c.Description(),
				"expiry":        coupon.FormatExpiry(c.Expiry(), uc.cfg.Location()),
				"assigned_from": c.AssignedFrom(),
				"assigned_to":   c.AssignedTo(),
			},
		})
	}

	return &CreateCouponResult{Hash: c.Hash()}, nil
}

func isMissing(err error) bool {
	return infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindAmbiguous)
}
