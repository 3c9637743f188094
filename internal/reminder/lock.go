package reminder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrRunInProgress is returned when another dispatcher run holds the lock
var ErrRunInProgress = errors.New("a reminder run is already in progress")

// DefaultLockKey is the redis key guarding dispatcher runs
const DefaultLockKey = "taskboard:reminder:run"

// Release gives a held lock back
type Release func(ctx context.Context) error

// Locker guards against overlapping dispatcher runs
type Locker interface {
	Acquire(ctx context.Context) (Release, error)
}

// releaseScript deletes the key only while it still holds our token, so an expired lock taken
// over by another run is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a lock shared by every process using the same redis
type RedisLocker struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisLocker creates a lock on key that expires after ttl if never released
func NewRedisLocker(client *redis.Client, key string, ttl time.Duration) *RedisLocker {
	if key == "" {
		key = DefaultLockKey
	}
	return &RedisLocker{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

// Acquire takes the lock or fails with ErrRunInProgress
func (l *RedisLocker) Acquire(ctx context.Context) (Release, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !ok {
		return nil, ErrRunInProgress
	}
	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{l.key}, token).Err(); err != nil {
			return fmt.Errorf("failed to release run lock: %w", err)
		}
		return nil
	}, nil
}

// LocalLocker is an in-process lock for deployments without redis
type LocalLocker struct {
	mu   sync.Mutex
	held bool
}

// NewLocalLocker creates an unlocked LocalLocker
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{}
}

// Acquire takes the lock or fails with ErrRunInProgress
func (l *LocalLocker) Acquire(_ context.Context) (Release, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return nil, ErrRunInProgress
	}
	l.held = true

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			l.mu.Lock()
			l.held = false
			l.mu.Unlock()
		})
		return nil
	}, nil
}
