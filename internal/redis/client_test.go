package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testTool struct {
	Slug   string  `json:"slug"`
	Rating float64 `json:"rating"`
}

func setupTestRedis(t *testing.T) *goredis.Client {
	t.Helper()
	s := miniredis.RunT(t)
	return goredis.NewClient(&goredis.Options{Addr: s.Addr()})
}

func TestJSONCache_GetMiss(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewJSONCache[testTool](client, "tool", 5*time.Second)

	result, err := cache.Get(context.Background(), "nonexistent")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestJSONCache_SetAndGet(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewJSONCache[testTool](client, "tool", 5*time.Second)
	ctx := context.Background()

	item := &testTool{Slug: "pdf-merge", Rating: 4.5}
	require.NoError(t, cache.Set(ctx, "pdf-merge", item))

	result, err := cache.Get(ctx, "pdf-merge")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "pdf-merge", result.Slug)
	assert.Equal(t, 4.5, result.Rating)
}

func TestJSONCache_SliceValues(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewJSONCache[[]testTool](client, "featured", time.Minute)
	ctx := context.Background()

	items := []testTool{{Slug: "a", Rating: 5}, {Slug: "b", Rating: 4}}
	require.NoError(t, cache.Set(ctx, "all", &items))

	result, err := cache.Get(ctx, "all")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, *result, 2)
	assert.Equal(t, "a", (*result)[0].Slug)
}

func TestJSONCache_Delete(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewJSONCache[testTool](client, "tool", 5*time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "x", &testTool{Slug: "x"}))
	require.NoError(t, cache.Delete(ctx, "x"))

	result, err := cache.Get(ctx, "x")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestJSONCache_NilClient(t *testing.T) {
	cache := NewJSONCache[testTool](nil, "tool", 5*time.Second)
	ctx := context.Background()

	result, err := cache.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Nil(t, result)

	assert.NoError(t, cache.Set(ctx, "key", &testTool{Slug: "x"}))
	assert.NoError(t, cache.Delete(ctx, "key"))
}

func TestJSONCache_NilCache(t *testing.T) {
	var cache *JSONCache[testTool]
	ctx := context.Background()

	result, err := cache.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Nil(t, result)

	assert.NoError(t, cache.Set(ctx, "key", &testTool{}))
	assert.NoError(t, cache.Delete(ctx, "key"))
}

func TestJSONCache_KeyFormat(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewJSONCache[testTool](client, "tool", 5*time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "pdf-merge", &testTool{Slug: "pdf-merge"}))

	val, err := client.Get(ctx, "tool:pdf-merge").Result()
	require.NoError(t, err)
	assert.Contains(t, val, "pdf-merge")
}
