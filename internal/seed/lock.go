package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/iliyamo/cinevision/internal/utils"
)

// Lock keys, one per service database.
const (
	CatalogLockKey  = "lock:seed:catalog"
	IdentityLockKey = "lock:seed:identity"
)

// ErrLockNotHeld is returned by Release when the lock expired or was taken
// over by another holder.
var ErrLockNotHeld = errors.New("seed lock not held")

// ErrLockTimeout is returned by Do when the lock stays taken for longer
// than the wait budget.
var ErrLockTimeout = errors.New("timed out waiting for seed lock")

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// Lock is a Redis mutex that serializes seeding across service instances
// booting at the same time.  Holders rerun the count checks after
// acquiring it, so a late instance sees the rows written by the first one
// and skips.
type Lock struct {
	rdb   *redis.Client
	key   string
	ttl   time.Duration
	retry time.Duration
	token string
}

func NewLock(rdb *redis.Client, key string, ttl time.Duration) *Lock {
	return &Lock{rdb: rdb, key: key, ttl: ttl, retry: 250 * time.Millisecond}
}

// Acquire tries once to take the lock.
func (l *Lock) Acquire(ctx context.Context) (bool, error) {
	token, err := utils.RandomHex(16)
	if err != nil {
		return false, fmt.Errorf("lock token: %w", err)
	}
	ok, err := l.rdb.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire %s: %w", l.key, err)
	}
	if ok {
		l.token = token
	}
	return ok, nil
}

// Release frees the lock if this holder still owns it.
func (l *Lock) Release(ctx context.Context) error {
	if l.token == "" {
		return ErrLockNotHeld
	}
	n, err := releaseScript.Run(ctx, l.rdb, []string{l.key}, l.token).Int64()
	l.token = ""
	if err != nil {
		return fmt.Errorf("release %s: %w", l.key, err)
	}
	if n == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// Do waits up to wait for the lock, runs fn while holding it and releases
// it.  fn itself is not bounded by wait.  A release failure is reported
// only when fn succeeded; a lock that expired while fn ran is not a failure.
func (l *Lock) Do(ctx context.Context, wait time.Duration, fn func(context.Context) error) error {
	deadline := time.Now().Add(wait)
	for {
		ok, err := l.Acquire(ctx)
		if err != nil {
			return err
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("acquire %s: %w", l.key, ErrLockTimeout)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.retry):
		}
	}
	err := fn(ctx)
	if rerr := l.Release(context.WithoutCancel(ctx)); err == nil && !errors.Is(rerr, ErrLockNotHeld) {
		err = rerr
	}
	return err
}

// LockConfig bounds the startup lock: TTL is how long a crashed holder can
// block others, Wait is how long an instance waits to acquire it.
type LockConfig struct {
	TTL  time.Duration
	Wait time.Duration
}

// Guarded runs fn under the Redis lock for key.  With no Redis client it
// runs fn directly and logs that concurrent instances may race.
func Guarded(ctx context.Context, rdb *redis.Client, key string, cfg LockConfig, log *zap.Logger, fn func(context.Context) error) error {
	if rdb == nil {
		log.Warn("redis unavailable, seeding without startup lock", zap.String("lock", key))
		return fn(ctx)
	}
	return NewLock(rdb, key, cfg.TTL).Do(ctx, cfg.Wait, fn)
}
