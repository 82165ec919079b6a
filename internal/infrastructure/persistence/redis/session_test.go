package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 需要真实Redis：LIBRARY_TEST_REDIS_ADDR=localhost:6379 go test ./...
func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	addr := os.Getenv("LIBRARY_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("LIBRARY_TEST_REDIS_ADDR未设置，跳过Redis测试")
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return NewSessionStore(client)
}

func TestSessionStore_Session(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, 1, map[string]interface{}{"username": "u1"}, time.Minute))

	ttl, err := store.client.TTL(ctx, sessionKey(1)).Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0)

	active, err := store.HasSession(ctx, 1)
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, store.DeleteSession(ctx, 1))
	active, err = store.HasSession(ctx, 1)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestSessionStore_Blacklist(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	revoked, err := store.IsInBlacklist(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.AddToBlacklist(ctx, "token-a", time.Minute))

	revoked, err = store.IsInBlacklist(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "session:42", sessionKey(42))
	assert.Equal(t, "blacklist:abc", blacklistKey("abc"))
}
