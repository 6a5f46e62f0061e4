package queries

import (
	"context"
	"strings"

	"do-coupon-system/internal/infra"
	"do-coupon-system/internal/pkg/errs"
)

//go:generate mockgen -source=membership.go -destination=../../../tests/mock/queries/membership_mock.go -package=queriesmock

var (
	ErrInvalidLookup          = errs.New("membership number is required")
	ErrNoMembershipCollection = errs.New("account has no membership collection")
	ErrMemberNotFound         = errs.New("member not found")
	ErrMemberAmbiguous        = errs.New("member not unique")
)

type MemberReadStore interface {
	FindByNumber(ctx context.Context, collection, number string) ([]*MemberView, error)
}

type MembershipQueries interface {
	Lookup(ctx context.Context, account, number string) (*MemberView, error)
}

type membershipQueriesImpl struct {
	accounts AccountReadStore
	members  MemberReadStore
}

func NewMembershipQueries(accounts AccountReadStore, members MemberReadStore) MembershipQueries {
	return &membershipQueriesImpl{accounts: accounts, members: members}
}

// Lookup resolves a member in the collection named by the account's MembershipField.
func (q *membershipQueriesImpl) Lookup(ctx context.Context, account, number string) (*MemberView, error) {
	number = strings.TrimSpace(number)
	if number == "" || strings.TrimSpace(account) == "" {
		return nil, ErrInvalidLookup
	}

	acc, err := single(ctx, q.accounts, account)
	if err != nil {
		return nil, err
	}
	collection := strings.TrimSpace(acc.MembershipField)
	if collection == "" {
		return nil, ErrNoMembershipCollection
	}

	members, err := q.members.FindByNumber(ctx, collection, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNoMembershipCollection)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	switch len(members) {
	case 0:
		return nil, ErrMemberNotFound
	case 1:
		return members[0], nil
	default:
		return nil, ErrMemberAmbiguous
	}
}
