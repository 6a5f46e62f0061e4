//go:build e2e

package coupon_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/domain/coupon"
	"do-coupon-system/internal/handler/dto/request"
	"do-coupon-system/internal/handler/dto/response"
	"do-coupon-system/internal/infra/reconcile"
	"do-coupon-system/internal/usecase/queries"
	"do-coupon-system/tests/common/authtest"
	"do-coupon-system/tests/common/builder"
	"do-coupon-system/tests/common/httptest"
	"do-coupon-system/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	validateURL = "/validate-coupon"
	useURL      = "/use-coupon"
	historyURL  = "/history"
)

type CouponSuite struct {
	e2e.SharedSuite
}

func TestCouponSuite(t *testing.T) {
	suite.Run(t, new(CouponSuite))
}

func (s *CouponSuite) seedCoupon(hash, provider string, uses int) {
	s.Store.Seed(s.Config.Store.CouponCollection, builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.Hash = coupon.Hash(hash)
		b.AssignedFrom = provider
		b.UsesLeft = uses
	}).BuildAttrs())
}

func (s *CouponSuite) storedCoupon(hash string) map[string]any {
	for _, rec := range s.Store.Records(s.Config.Store.CouponCollection) {
		if rec["Hash"] == hash {
			return rec
		}
	}
	s.FailNow("coupon not stored", hash)
	return nil
}

// =============================================================================
// TestRedeemFlow - validate, redeem and read history against the wired app
// =============================================================================

func (s *CouponSuite) TestRedeemFlow() {
	s.Run("Normal case: provider validates, redeems and sees the history entry", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.Store, s.Router, "provFlow", account.RoleProvider)
		s.seedCoupon("flowhash", "provFlow", 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL,
			request.ValidateCouponRequest{Hash: "flowhash"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertJSONField(t, w, "status", coupon.StatusValid.String())
		httptest.AssertJSONField(t, w, "uses_left", float64(2))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, useURL,
			request.UseCouponRequest{Hash: "flowhash", Username: "provFlow", Provider: "provFlow"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertJSONField(t, w, "uses_left", float64(1))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.HistoryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		want := response.HistoryResponse{Items: []queries.HistoryItem{{
			Consumer:       "alice",
			Provider:       "provFlow",
			Platform:       string(account.PlatformCouponSystem),
			Time:           time.Now(),
			Amount:         1,
			AdditionalInfo: "Free Coffee",
		}}}
		if diff := cmp.Diff(want, got, cmpopts.EquateApproxTime(time.Minute)); diff != "" {
			t.Errorf("history mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Abnormal case: redeeming past the last use is rejected", func() {
		t := s.T()
		s.seedCoupon("oncehash", "provOnce", 1)
		body := request.UseCouponRequest{Hash: "oncehash", Username: "provFlow"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, useURL, body, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, useURL, body, "")
		require.Equal(t, http.StatusNotAcceptable, w.Code, w.Body.String())

		stored := s.storedCoupon("oncehash")
		require.Equal(t, float64(0), stored["UsesLeft"])
		require.Equal(t, false, stored["Active"])
	})
}

// =============================================================================
// TestConcurrentRedemption - the redis lock serialises redemptions of one coupon
// =============================================================================

func (s *CouponSuite) TestConcurrentRedemption() {
	s.Run("Normal case: exactly one of several concurrent redemptions succeeds", func() {
		t := s.T()
		s.Store.Seed(s.Config.Store.AccountCollection, builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) {
			b.Name = "provRace"
		}).BuildAttrs(t))
		s.seedCoupon("racehash", "provRace", 1)

		const workers = 6
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, useURL,
					request.UseCouponRequest{Hash: "racehash", Username: "provRace"}, "")
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		counts := map[int]int{}
		for _, c := range codes {
			counts[c]++
		}
		require.Equal(t, map[int]int{http.StatusOK: 1, http.StatusNotAcceptable: workers - 1}, counts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		keys, err := s.Redis.Keys(ctx, "coupon:redeem:*").Result()
		require.NoError(t, err)
		require.Empty(t, keys, "locks must be released")
	})
}

// =============================================================================
// TestReconciliation - a redemption whose history write fails is queued in redis
// =============================================================================

func (s *CouponSuite) TestReconciliation() {
	s.Run("Abnormal case: unknown acting account leaves a pending task", func() {
		t := s.T()
		s.seedCoupon("orphanhash", "provOrphan", 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, useURL,
			request.UseCouponRequest{Hash: "orphanhash", Username: "ghost"}, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		tasks, err := reconcile.NewRedisRecorder(s.Redis).Pending(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Equal(t, "orphanhash", tasks[0].Hash)
		require.Equal(t, "ghost", tasks[0].Username)
		require.NotEmpty(t, tasks[0].CouponID)

		require.Equal(t, float64(2), s.storedCoupon("orphanhash")["UsesLeft"])
	})
}
