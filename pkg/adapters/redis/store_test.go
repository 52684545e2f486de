package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/sortvis/pkg/adapters/redis"
	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/aretw0/sortvis/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T, opts ...redis.Option) (*redis.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisCache_Contract(t *testing.T) {
	cache, _ := newCache(t)
	ports.RunStepCacheContract(t, cache)
}

func TestRedisCache_TTL_Expiration(t *testing.T) {
	cache, mr := newCache(t, redis.WithTTL(time.Second))
	ctx := context.Background()
	values := []int{2, 1}

	err := cache.Put(ctx, domain.Bubble, values, []domain.Step{domain.Compare{I: 0, J: 1}})
	assert.NoError(t, err)

	_, err = cache.Get(ctx, domain.Bubble, values)
	assert.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = cache.Get(ctx, domain.Bubble, values)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestRedisCache_Prefix(t *testing.T) {
	cache, mr := newCache(t, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	err := cache.Put(ctx, domain.Quick, []int{3, 1, 2}, []domain.Step{domain.ClearRange{}})
	assert.NoError(t, err)

	assert.True(t, mr.Exists("custom:app:quick:3,1,2"), "Expected key with custom prefix to exist")

	raw, err := mr.Get("custom:app:quick:3,1,2")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"t":"range"}]`, raw)
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	cache, mr := newCache(t)
	require.NoError(t, mr.Set(redis.DefaultPrefix+"bubble:1,2", `[{"t":"teleport"}]`))

	_, err := cache.Get(context.Background(), domain.Bubble, []int{1, 2})
	assert.ErrorIs(t, err, domain.ErrUnknownStep)
}

func TestRedisCache_Ping(t *testing.T) {
	cache, _ := newCache(t)
	assert.NoError(t, cache.Ping(context.Background()))
}
