//go:build unit

package queries_test

import (
	"context"
	"testing"

	"do-coupon-system/internal/infra"
	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/pkg/errs"
	"do-coupon-system/internal/usecase/queries"
	queriesmock "do-coupon-system/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMembershipQueries_Lookup(t *testing.T) {
	ctx := context.Background()
	owner := &queries.AccountView{Name: "shop", Role: account.RoleProvider, MembershipField: "members", Active: true}
	alice := &queries.MemberView{MembershipNumber: "1001", Name: "Alice", Point: 10}

	t.Run("single member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		accounts := queriesmock.NewMockAccountReadStore(ctrl)
		members := queriesmock.NewMockMemberReadStore(ctrl)
		accounts.EXPECT().FindByName(gomock.Any(), "shop").Return([]*queries.AccountView{owner}, nil)
		members.EXPECT().FindByNumber(gomock.Any(), "members", "1001").Return([]*queries.MemberView{alice}, nil)

		got, err := queries.NewMembershipQueries(accounts, members).Lookup(ctx, "shop", " 1001 ")
		require.NoError(t, err)
		assert.Equal(t, alice, got)
	})

	testCases := []struct {
		name      string
		members   []*queries.MemberView
		storeErr  error
		expectErr error
	}{
		{name: "no member", expectErr: queries.ErrMemberNotFound},
		{name: "several members", members: []*queries.MemberView{alice, alice}, expectErr: queries.ErrMemberAmbiguous},
		{name: "collection missing", storeErr: infra.WrapRepoErr("gone", assert.AnError, infra.KindNotFound), expectErr: queries.ErrNoMembershipCollection},
		{name: "store failure", storeErr: infra.WrapRepoErr("down", assert.AnError), expectErr: queries.ErrStoreUnavailable},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			accounts := queriesmock.NewMockAccountReadStore(ctrl)
			members := queriesmock.NewMockMemberReadStore(ctrl)
			accounts.EXPECT().FindByName(gomock.Any(), "shop").Return([]*queries.AccountView{owner}, nil)
			members.EXPECT().FindByNumber(gomock.Any(), "members", "1001").Return(tc.members, tc.storeErr)

			_, err := queries.NewMembershipQueries(accounts, members).Lookup(ctx, "shop", "1001")
			assert.True(t, errs.Is(err, tc.expectErr), "got %v", err)
		})
	}

	t.Run("account without membership collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		accounts := queriesmock.NewMockAccountReadStore(ctrl)
		members := queriesmock.NewMockMemberReadStore(ctrl)
		accounts.EXPECT().FindByName(gomock.Any(), "shop").Return([]*queries.AccountView{{Name: "shop"}}, nil)

		_, err := queries.NewMembershipQueries(accounts, members).Lookup(ctx, "shop", "1001")
		assert.True(t, errs.Is(err, queries.ErrNoMembershipCollection), "got %v", err)
	})

	t.Run("missing number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		accounts := queriesmock.NewMockAccountReadStore(ctrl)
		members := queriesmock.NewMockMemberReadStore(ctrl)

		_, err := queries.NewMembershipQueries(accounts, members).Lookup(ctx, "shop", "")
		assert.True(t, errs.Is(err, queries.ErrInvalidLookup), "got %v", err)
	})
}
