package yaparsecache_test

import (
	"context"
	"testing"
	"time"

	"github.com/YaCodeDev/GoYaTgMarkup/yaparsecache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryParseCache(t *testing.T) {
	t.Parallel()

	cache := yaparsecache.NewMemory(time.Minute)
	defer cache.Close()

	ctx := context.Background()

	record := yaparsecache.Record{
		Markup: "__italic__",
		Plain:  "italic",
		Entities: []yaparsecache.EntityRecord{
			{Kind: yaparsecache.KindItalic, Offset: 0, Length: 6},
		},
	}

	t.Run("[Ping] - always healthy", func(t *testing.T) {
		assert.NoError(t, cache.Ping(ctx))
	})

	t.Run("[Get] - missing markup is a miss", func(t *testing.T) {
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

	t.Run("[Put] - zero ttl stores without expiry", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, "endless", record, 0))

		_, hit, err := cache.Get(ctx, "endless")

		assert.NoError(t, err)
		assert.True(t, hit)
	})
}

func TestMemoryParseCacheExpiry(t *testing.T) {
	t.Parallel()

	cache := yaparsecache.NewMemory(time.Minute)
	defer cache.Close()

	ctx := context.Background()
	record := yaparsecache.Record{Markup: "m", Plain: "m"}

	require.NoError(t, cache.Put(ctx, record.Markup, record, time.Millisecond))

	time.Sleep(10 * time.Millisecond)

	// Expired before the sweeper ran: Get must still report a miss.
	_, hit, err := cache.Get(ctx, record.Markup)

	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryParseCacheClose(t *testing.T) {
	t.Parallel()

	cache := yaparsecache.NewMemory(time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "m", yaparsecache.Record{Markup: "m"}, time.Hour))
	require.NoError(t, cache.Close())

	_, hit, err := cache.Get(ctx, "m")

	assert.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, cache.Close(), "closing twice must be safe")
}

func TestMemoryParseCacheSweeper(t *testing.T) {
	t.Parallel()

	cache := yaparsecache.NewMemory(5 * time.Millisecond)
	defer cache.Close()

	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "short", yaparsecache.Record{Markup: "short"}, time.Millisecond))
	require.NoError(t, cache.Put(ctx, "long", yaparsecache.Record{Markup: "long"}, time.Hour))

	time.Sleep(30 * time.Millisecond)

	_, hit, _ := cache.Get(ctx, "short")
	assert.False(t, hit)

	_, hit, _ = cache.Get(ctx, "long")
	assert.True(t, hit)
}
