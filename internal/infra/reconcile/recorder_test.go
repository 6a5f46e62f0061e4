//go:build unit

package reconcile_test

import (
	"context"
	"testing"
	"time"

	"do-coupon-system/internal/infra/reconcile"
	"do-coupon-system/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewWithoutRedisLogs(t *testing.T) {
	r := reconcile.New(nil)
	assert.IsType(t, reconcile.LogRecorder{}, r)
	assert.NoError(t, r.Record(context.Background(), commands.ReconciliationTask{
		ID:       uuid.New(),
		CouponID: "doc1",
		Hash:     "h1",
		Username: "provA",
		Reason:   "account not found",
		At:       time.Now(),
	}))
}
