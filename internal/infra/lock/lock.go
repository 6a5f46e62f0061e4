package lock

import (
	"context"
	"errors"
	"sync"
	"time"

	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/usecase/commands"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "coupon:redeem:"

// New picks the locker named by cfg.Backend. cli may be nil unless the
// backend is redis.
func New(cfg config.LockConfig, cli *redis.Client) commands.RedemptionLocker {
	switch cfg.Backend {
	case config.LockBackendMemory:
		return NewMemoryLock()
	case config.LockBackendRedis:
		return NewRedisLock(cli, cfg.TTL, cfg.Retries)
	default:
		return NoopLock{}
	}
}

// NoopLock leaves concurrent redemptions unserialised.
type NoopLock struct{}

func (NoopLock) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

// MemoryLock serialises redemptions of the same key within one process.
type MemoryLock struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

func NewMemoryLock() *MemoryLock {
	return &MemoryLock{locks: map[string]*keyLock{}}
}

func (m *MemoryLock) Lock(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	kl, ok := m.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		m.locks[key] = kl
	}
	kl.refs++
	m.mu.Unlock()

	select {
	case kl.ch <- struct{}{}:
		return func() { m.release(key, kl) }, nil
	case <-ctx.Done():
		m.drop(key, kl)
		return nil, commands.ErrLockNotObtained
	}
}

func (m *MemoryLock) release(key string, kl *keyLock) {
	<-kl.ch
	m.drop(key, kl)
}

func (m *MemoryLock) drop(key string, kl *keyLock) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(m.locks, key)
	}
}

// RedisLock serialises redemptions across processes.
type RedisLock struct {
	cli     *redislock.Client
	ttl     time.Duration
	retries int
}

func NewRedisLock(cli *redis.Client, ttl time.Duration, retries int) *RedisLock {
	return &RedisLock{cli: redislock.New(cli), ttl: ttl, retries: retries}
}

func (r *RedisLock) Lock(ctx context.Context, key string) (func(), error) {
	l, err := r.cli.Obtain(ctx, keyPrefix+key, r.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), r.retries),
	})
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, commands.ErrLockNotObtained
		}
		return nil, err
	}
	return func() {
		// the request context may already be cancelled
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = l.Release(ctx)
	}, nil
}
