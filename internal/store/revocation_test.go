package store

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (RevocationStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRevocationStore(client, logger.Nop()), mr
}

// testClock is a settable clock for the in-memory store.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestRedisRevocationStore_Tokens(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	revoked, err := store.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.RevokeToken(ctx, "jti-1", time.Minute))
	revoked, err = store.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, mr.Exists(revokedTokenKeyPrefix+"jti-1"))

	mr.FastForward(time.Minute)
	revoked, err = store.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "denylist entries expire with the token")
}

func TestRedisRevocationStore_ExpiredTokenIsNotStored(t *testing.T) {
	store, mr := setupTestRedis(t)

	require.NoError(t, store.RevokeToken(context.Background(), "jti-old", 0))
	assert.False(t, mr.Exists(revokedTokenKeyPrefix+"jti-old"))
}

func TestRedisRevocationStore_UserCutoff(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()
	cutoff := time.Date(2026, 4, 1, 10, 0, 0, 500, time.UTC)

	_, ok, err := store.UserRevokedAt(ctx, 12)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.RevokeUser(ctx, 12, cutoff, time.Hour))

	got, ok, err := store.UserRevokedAt(ctx, 12)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, cutoff.Equal(got))

	val, err := mr.Get(revokedUserKeyPrefix + "12")
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(cutoff.UnixNano(), 10), val)
}

func TestRedisRevocationStore_Unavailable(t *testing.T) {
	store, mr := setupTestRedis(t)
	mr.Close()

	_, err := store.IsTokenRevoked(context.Background(), "jti")
	assert.Error(t, err)
	_, _, err = store.UserRevokedAt(context.Background(), 1)
	assert.Error(t, err)
}

func TestMemoryRevocationStore(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)}
	store := NewMemoryRevocationStore(time.Minute, logger.Nop())
	store.now = clock.Now
	ctx := context.Background()

	require.NoError(t, store.RevokeToken(ctx, "jti-1", time.Minute))
	require.NoError(t, store.RevokeToken(ctx, "jti-expired", -time.Second))
	require.NoError(t, store.RevokeUser(ctx, 5, clock.Now(), 2*time.Minute))

	revoked, _ := store.IsTokenRevoked(ctx, "jti-1")
	assert.True(t, revoked)
	revoked, _ = store.IsTokenRevoked(ctx, "jti-expired")
	assert.False(t, revoked)

	cutoff, ok, _ := store.UserRevokedAt(ctx, 5)
	assert.True(t, ok)
	assert.Equal(t, clock.Now(), cutoff)

	clock.Advance(time.Minute)
	revoked, _ = store.IsTokenRevoked(ctx, "jti-1")
	assert.False(t, revoked)
	assert.Equal(t, 1, store.Sweep())

	clock.Advance(time.Minute)
	_, ok, _ = store.UserRevokedAt(ctx, 5)
	assert.False(t, ok)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Sweep())
}

func TestMemoryRevocationStore_RunStopsOnCancel(t *testing.T) {
	store := NewMemoryRevocationStore(time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- store.Run(ctx) }()

	require.NoError(t, store.RevokeToken(ctx, "short", time.Millisecond))
	assert.Eventually(t, func() bool {
		store.mu.RLock()
		defer store.mu.RUnlock()
		return len(store.tokens) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	assert.Equal(t, "revocation-sweeper", store.Name())
}
