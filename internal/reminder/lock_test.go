package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisLocker(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)

	first := NewRedisLocker(client, "", time.Minute)
	second := NewRedisLocker(client, "", time.Minute)

	release, err := first.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, mr.Exists(DefaultLockKey))

	_, err = second.Acquire(ctx)
	assert.ErrorIs(t, err, ErrRunInProgress)

	require.NoError(t, release(ctx))
	assert.False(t, mr.Exists(DefaultLockKey))

	release, err = second.Acquire(ctx)
	require.NoError(t, err)
	require.NoError(t, release(ctx))
}

func TestRedisLocker_ExpiredLockIsNotStolenBack(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	locker := NewRedisLocker(client, "test:lock", time.Second)

	staleRelease, err := locker.Acquire(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)
	release, err := locker.Acquire(ctx)
	require.NoError(t, err)

	// releasing the expired lock must not drop the one held by the newer run
	require.NoError(t, staleRelease(ctx))
	assert.True(t, mr.Exists("test:lock"))

	require.NoError(t, release(ctx))
	assert.False(t, mr.Exists("test:lock"))
}

func TestRedisLocker_Unavailable(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()

	_, err := NewRedisLocker(client, "", time.Minute).Acquire(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRunInProgress)
}

func TestLocalLocker(t *testing.T) {
	ctx := context.Background()
	locker := NewLocalLocker()

	release, err := locker.Acquire(ctx)
	require.NoError(t, err)

	_, err = locker.Acquire(ctx)
	assert.ErrorIs(t, err, ErrRunInProgress)

	require.NoError(t, release(ctx))
	require.NoError(t, release(ctx))

	release, err = locker.Acquire(ctx)
	require.NoError(t, err)
	require.NoError(t, release(ctx))
}
