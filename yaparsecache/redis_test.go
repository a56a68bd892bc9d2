package yaparsecache_test

import (
	"context"
	"testing"
	"time"

	"github.com/YaCodeDev/GoYaTgMarkup/yaparsecache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *yaparsecache.Redis {
	t.Helper()

	mr, err := miniredis.Run()

	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := yaparsecache.NewRedis(client, nil)

	t.Cleanup(func() {
		_ = cache.Close()
		mr.Close()
	})

	return cache
}

func TestRedisParseCache(t *testing.T) {
	t.Parallel()

	cache := setupTestRedis(t)
	ctx := context.Background()

	record := yaparsecache.Record{
		Markup: "**bold**",
		Plain:  "bold",
		Entities: []yaparsecache.EntityRecord{
			{Kind: yaparsecache.KindBold, Offset: 0, Length: 4},
		},
	}

	t.Run("[Ping] - backend is reachable", func(t *testing.T) {
		assert.NoError(t, cache.Ping(ctx))
	})

	t.Run("[Get] - missing markup is a miss, not an error", func(t *testing.T) {
		_, hit, err := cache.Get(ctx, "never stored")

		assert.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("[Put/Get] - stored record comes back verbatim", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, record.Markup, record, time.Hour))

		got, hit, err := cache.Get(ctx, record.Markup)

		assert.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, record, got)
	})

	t.Run("[Get] - stored markup mismatch degrades to a miss", func(t *testing.T) {
		stale := record
		stale.Markup = "something else entirely"

		// Simulates a digest collision: the key for one markup holding the
		// record of another.
		require.NoError(t, cache.Put(ctx, "collider", stale, time.Hour))

		_, hit, err := cache.Get(ctx, "collider")

		assert.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("[Get] - undecodable payload is an error", func(t *testing.T) {
		corrupt := setupTestRedis(t)

		require.NoError(t, corrupt.Put(ctx, record.Markup, record, time.Hour))

		keys, kerr := corrupt.Raw().Keys(ctx, "*").Result()

		require.NoError(t, kerr)
		require.Len(t, keys, 1)
		require.NoError(t, corrupt.Raw().Set(ctx, keys[0], "not msgpack", 0).Err())

		_, hit, err := corrupt.Get(ctx, record.Markup)

		assert.Error(t, err)
		assert.False(t, hit)
	})
}
