//go:build unit

package repository_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/domain/coupon"
	"do-coupon-system/internal/domain/membership"
	"do-coupon-system/internal/infra"
	"do-coupon-system/internal/infra/repository"
	"do-coupon-system/internal/infra/strapi"
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/tests/common/strapitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func couponRepo(srv *strapitest.Server) *repository.CouponRepository {
	cfg := srv.StoreConfig()
	return repository.NewCouponRepository(strapi.NewClient(cfg), cfg, config.NewTestConfig().Coupon)
}

func TestCouponRepository_FindByHash(t *testing.T) {
	srv := strapitest.NewServer(t)
	srv.Seed("coupons", map[string]any{"Hash": "h1", "Title": "Coffee", "Expiry": "2030-01-01", "AssignedFrom": "provA", "AssignedTo": "alice", "UsesLeft": 2, "Active": true})
	srv.Seed("coupons", map[string]any{"Hash": "dup", "AssignedFrom": "provA", "Expiry": "2030-01-01"})
	srv.Seed("coupons", map[string]any{"Hash": "dup", "AssignedFrom": "provB", "Expiry": "2030-01-01"})
	repo := couponRepo(srv)
	ctx := context.Background()

	testCases := []struct {
		name       string
		hash       coupon.Hash
		issuer     string
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: single match", hash: "h1"},
		{name: "success: issuer narrows duplicates", hash: "dup", issuer: "provB"},
		{name: "error: issuer mismatch", hash: "h1", issuer: "provB", expectKind: infra.KindNotFound},
		{name: "error: no match", hash: "zzz", expectKind: infra.KindNotFound},
		{name: "error: several matches", hash: "dup", expectKind: infra.KindAmbiguous},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := repo.FindByHash(ctx, tc.hash, tc.issuer)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.hash, c.Hash())
			assert.NotEmpty(t, c.ID())
		})
	}

	t.Run("decodes every attribute", func(t *testing.T) {
		c, err := repo.FindByHash(ctx, "h1", "")
		require.NoError(t, err)
		assert.Equal(t, "Coffee", c.Title())
		assert.Equal(t, "provA", c.AssignedFrom())
		assert.Equal(t, "alice", c.AssignedTo())
		assert.Equal(t, 2, c.UsesLeft())
		assert.True(t, c.Active())
		assert.Equal(t, "2030-01-01", coupon.FormatExpiry(c.Expiry(), time.UTC))
	})

	t.Run("error: store failure", func(t *testing.T) {
		srv.Fail(http.MethodGet, "coupons", http.StatusInternalServerError)
		_, err := repo.FindByHash(ctx, "h1", "")
		assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
	})
}

func TestCouponRepository_CreateAndSave(t *testing.T) {
	srv := strapitest.NewServer(t)
	repo := couponRepo(srv)
	ctx := context.Background()

	exp, err := coupon.ParseExpiry("2030-06-30", time.UTC)
	require.NoError(t, err)
	c, err := coupon.New("Coffee", "", exp, "provA", "alice", 1, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c))

	stored := srv.Records("coupons")
	require.Len(t, stored, 1)
	assert.Equal(t, c.Hash().String(), stored[0]["Hash"])
	assert.Equal(t, "2030-06-30", stored[0]["Expiry"])
	assert.Equal(t, true, stored[0]["Active"])
	assert.Equal(t, float64(1), stored[0]["UsesLeft"])
	assert.Nil(t, stored[0]["Description"])

	found, err := repo.FindByHash(ctx, c.Hash(), "")
	require.NoError(t, err)
	require.NoError(t, found.Redeem(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.SaveState(ctx, found))

	stored = srv.Records("coupons")
	assert.Equal(t, float64(0), stored[0]["UsesLeft"])
	assert.Equal(t, false, stored[0]["Active"])
	assert.Equal(t, "Coffee", stored[0]["Title"])

	t.Run("error: missing document", func(t *testing.T) {
		ghost := coupon.Reconstruct("ghost", "h", "t", "", exp, "a", "b", 1, true, "")
		err := repo.SaveState(ctx, ghost)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAccountRepository(t *testing.T) {
	srv := strapitest.NewServer(t)
	srv.Seed("coupon-sys-accounts", map[string]any{
		"Name": "provA", "Password": "pw", "Role": "Provider", "MembershipField": "members",
		"ConsumptionRecord": []map[string]any{
			{"Consumer": "bob", "Provider": "provA", "Platform": "CouponSystem", "Time": "2025-01-01T00:00:00Z", "Amount": 1, "AdditionalInfo": "Old"},
		},
	})
	srv.Seed("coupon-sys-accounts", map[string]any{"Name": "twin", "Role": "Admin"})
	srv.Seed("coupon-sys-accounts", map[string]any{"Name": "twin", "Role": "Admin"})

	cfg := srv.StoreConfig()
	repo := repository.NewAccountRepository(strapi.NewClient(cfg), cfg)
	ctx := context.Background()

	t.Run("finds by name with history", func(t *testing.T) {
		got, err := repo.FindByName(ctx, "provA")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, account.RoleProvider, got[0].Role())
		assert.Equal(t, "members", got[0].MembershipField())
		require.Len(t, got[0].History(), 1)

		reqs := srv.Requests()
		assert.Equal(t, []string{"ConsumptionRecord"}, reqs[len(reqs)-1].Query["populate[0]"])
	})

	t.Run("returns duplicates as-is", func(t *testing.T) {
		got, err := repo.FindByName(ctx, "twin")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("appends history without component ids", func(t *testing.T) {
		got, err := repo.FindByName(ctx, "provA")
		require.NoError(t, err)
		acc := got[0]
		rec, err := account.NewRecord("alice", "provA", account.PlatformCouponSystem, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 1, "Coffee")
		require.NoError(t, err)
		acc.Append(rec)
		require.NoError(t, repo.SaveHistory(ctx, acc))

		stored := srv.Get("coupon-sys-accounts", acc.ID())
		list, ok := stored["ConsumptionRecord"].([]any)
		require.True(t, ok)
		require.Len(t, list, 2)
		assert.Equal(t, "bob", list[0].(map[string]any)["Consumer"])
		assert.Equal(t, "alice", list[1].(map[string]any)["Consumer"])
	})
}

func TestMemberRepository(t *testing.T) {
	srv := strapitest.NewServer(t)
	srv.Seed("members", map[string]any{"MembershipNumber": 1001, "Name": "Alice", "Email": "a@x.io", "Point": 100, "DiscountPoint": 20})
	cfg := srv.StoreConfig()
	repo := repository.NewMemberRepository(strapi.NewClient(cfg))
	ctx := context.Background()

	got, err := repo.FindByNumber(ctx, "members", "1001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1001", got[0].MembershipNumber())
	assert.Equal(t, "Alice", got[0].DisplayName())

	byEmail, err := repo.FindByEmail(ctx, "members", "a@x.io")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, got[0].ID(), byEmail[0].ID())

	d, err := membership.NewDeduction(30, 10)
	require.NoError(t, err)
	require.NoError(t, got[0].Apply(d))
	require.NoError(t, repo.SaveBalance(ctx, "members", got[0]))

	stored := srv.Get("members", got[0].ID())
	assert.Equal(t, float64(80), stored["Point"])
	assert.Equal(t, float64(10), stored["DiscountPoint"])
	assert.Equal(t, "Alice", stored["Name"])
}
