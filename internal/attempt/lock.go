package attempt

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockTTL       = 10 * time.Second
	lockRetryWait = 50 * time.Millisecond
	lockRetries   = 20
)

// StartLocker serializes attempt creation for a (user, quiz) pair so that
// concurrent start requests resolve to a single IN_PROGRESS attempt.
type StartLocker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

type redisLocker struct {
	client *redis.Client
}

// NewRedisLocker locks across processes via SETNX with a TTL, so a crashed
// holder cannot wedge the key forever.
func NewRedisLocker(client *redis.Client) StartLocker {
	return &redisLocker{client: client}
}

func (l *redisLocker) Lock(ctx context.Context, key string) (func(), error) {
	lockKey := "attempt-start-lock:" + key

	for i := 0; i < lockRetries; i++ {
		ok, err := l.client.SetNX(ctx, lockKey, "1", lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire start lock: %w", err)
		}
		if ok {
			return func() {
				l.client.Del(context.Background(), lockKey)
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryWait):
		}
	}
	return nil, fmt.Errorf("start lock for %s is held", key)
}

type memoryLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMemoryLocker is the single-process fallback used when Redis is not
// configured.
func NewMemoryLocker() StartLocker {
	return &memoryLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *memoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}
