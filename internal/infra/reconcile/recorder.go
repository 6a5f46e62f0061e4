package reconcile

import (
	"context"
	"encoding/json"
	"log/slog"

	"do-coupon-system/internal/pkg/errs"
	"do-coupon-system/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

const ListKey = "coupon:reconcile"

// New prefers the Redis list when a client is available.
func New(cli *redis.Client) commands.ReconciliationRecorder {
	if cli == nil {
		return LogRecorder{}
	}
	return NewRedisRecorder(cli)
}

// LogRecorder leaves the task in the error log for an operator.
type LogRecorder struct{}

func (LogRecorder) Record(_ context.Context, task commands.ReconciliationTask) error {
	slog.Error("redemption needs reconciliation",
		slog.String("task_id", task.ID.String()),
		slog.String("coupon_id", task.CouponID),
		slog.String("hash", task.Hash),
		slog.String("username", task.Username),
		slog.String("reason", task.Reason),
		slog.Time("time", task.At))
	return nil
}

// RedisRecorder pushes tasks onto a list that a follow-up job drains.
type RedisRecorder struct {
	cli *redis.Client
}

func NewRedisRecorder(cli *redis.Client) *RedisRecorder {
	return &RedisRecorder{cli: cli}
}

func (r *RedisRecorder) Record(ctx context.Context, task commands.ReconciliationTask) error {
	b, err := json.Marshal(task)
	if err != nil {
		return errs.Wrap(err, "encode reconciliation task")
	}
	if err := r.cli.LPush(ctx, ListKey, b).Err(); err != nil {
		// keep the task visible even when Redis is down
		_ = LogRecorder{}.Record(ctx, task)
		return errs.Wrap(err, "push reconciliation task")
	}
	return nil
}

// Pending lists queued tasks, newest first.
func (r *RedisRecorder) Pending(ctx context.Context) ([]commands.ReconciliationTask, error) {
	raw, err := r.cli.LRange(ctx, ListKey, 0, -1).Result()
	if err != nil {
		return nil, errs.Wrap(err, "read reconciliation tasks")
	}
	out := make([]commands.ReconciliationTask, 0, len(raw))
	for _, s := range raw {
		var t commands.ReconciliationTask
		if err := json.Unmarshal([]byte(s), &t); err != nil {
			return nil, errs.Wrap(err, "decode reconciliation task")
		}
		out = append(out, t)
	}
	return out, nil
}
