package commands

import (
	"context"
	"time"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/domain/coupon"
	"do-coupon-system/internal/domain/membership"
	"do-coupon-system/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// ErrLockNotObtained is returned by a RedemptionLocker that gave up waiting.
var ErrLockNotObtained = errs.New("redemption lock not obtained")

// CouponRepository returns KindNotFound for zero matches and KindAmbiguous for several.
type CouponRepository interface {
	FindByHash(ctx context.Context, hash coupon.Hash, issuer string) (*coupon.Coupon, error)
	Create(ctx context.Context, c *coupon.Coupon) error
	SaveState(ctx context.Context, c *coupon.Coupon) error
}

type AccountRepository interface {
	FindByName(ctx context.Context, name string) ([]*account.Account, error)
	SaveHistory(ctx context.Context, a *account.Account) error
}

type MemberRepository interface {
	FindByEmail(ctx context.Context, collection, email string) ([]*membership.Member, error)
	SaveBalance(ctx context.Context, collection string, m *membership.Member) error
}

// RedemptionLocker serialises the re-fetch and write of one coupon.
type RedemptionLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// ReconciliationTask describes a redemption whose history entry was never written.
type ReconciliationTask struct {
	ID       uuid.UUID `json:"id"`
	CouponID string    `json:"coupon_id"`
	Hash     string    `json:"hash"`
	Username string    `json:"username"`
	Reason   string    `json:"reason"`
	At       time.Time `json:"time"`
}

type ReconciliationRecorder interface {
	Record(ctx context.Context, task ReconciliationTask) error
}

type NotificationKind string

const (
	NotificationCouponIssued   NotificationKind = "coupon_issued"
	NotificationPointsDeducted NotificationKind = "points_deducted"
)

type Notification struct {
	Kind NotificationKind `json:"kind"`
	To   string           `json:"to"`
	Data map[string]any   `json:"data"`
}

// Notifier delivers best-effort notifications. Callers never wait for delivery.
type Notifier interface {
	Notify(n Notification)
}

// OutcomeRecorder counts business outcomes per operation.
type OutcomeRecorder interface {
	Outcome(operation, result string)
}

// Background runs work that must not hold up the response.
type Background interface {
	Go(name string, fn func(ctx context.Context) error)
}
