package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/lib/logger/handlers/slogdiscard"
)

func TestRedisLimiter(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{
		Addr: s.Addr(),
	})
	defer client.Close()

	ctx := context.Background()

	t.Run("AllowsUpToLimit", func(t *testing.T) {
		limiter := NewRedisLimiter(client, 3, time.Minute)

		for i := 0; i < 3; i++ {
			allowed, err := limiter.Allow(ctx, "user:1")
			require.NoError(t, err)
			assert.True(t, allowed)
		}

		allowed, err := limiter.Allow(ctx, "user:1")
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		limiter := NewRedisLimiter(client, 1, time.Minute)

		allowed, err := limiter.Allow(ctx, "user:2")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, "user:3")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("WindowExpires", func(t *testing.T) {
		limiter := NewRedisLimiter(client, 1, time.Minute)

		allowed, err := limiter.Allow(ctx, "user:4")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, "user:4")
		require.NoError(t, err)
		assert.False(t, allowed)

		s.FastForward(2 * time.Minute)

		allowed, err = limiter.Allow(ctx, "user:4")
		require.NoError(t, err)
		assert.True(t, allowed)
	})
}

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()

	limiter := NewMemoryLimiter(2, time.Minute)

	allowed, err := limiter.Allow(ctx, "user:1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "user:1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "user:1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "user:2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiterEvictsExpiredWindows(t *testing.T) {
	ctx := context.Background()

	limiter := NewMemoryLimiter(1, time.Minute)

	limiter.windows["stale:1"] = &window{count: 3, start: time.Now().Add(-2 * time.Minute)}
	limiter.windows["stale:2"] = &window{count: 1, start: time.Now().Add(-time.Hour)}

	allowed, err := limiter.Allow(ctx, "user:1")
	require.NoError(t, err)
	assert.True(t, allowed)

	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	assert.NotContains(t, limiter.windows, "stale:1")
	assert.NotContains(t, limiter.windows, "stale:2")
	assert.Contains(t, limiter.windows, "user:1")
}

func TestFailoverLimiter(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{
		Addr: s.Addr(),
	})
	defer client.Close()

	ctx := context.Background()
	logger := slogdiscard.NewDiscardLogger()

	t.Run("UsesPrimaryWhenHealthy", func(t *testing.T) {
		primary := NewRedisLimiter(client, 1, time.Minute)
		fallback := NewMemoryLimiter(1, time.Minute)
		limiter := NewFailoverLimiter(primary, fallback, logger)

		allowed, err := limiter.Allow(ctx, "user:1")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, "user:1")
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("FallsBackWhenPrimaryFails", func(t *testing.T) {
		down := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
		defer down.Close()

		primary := NewRedisLimiter(down, 1, time.Minute)
		fallback := NewMemoryLimiter(1, time.Minute)
		limiter := NewFailoverLimiter(primary, fallback, logger)

		allowed, err := limiter.Allow(ctx, "user:5")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, "user:5")
		require.NoError(t, err)
		assert.False(t, allowed)
	})
}
