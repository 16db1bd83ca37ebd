package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"viewcrumbs_echo/internal/testutil"
)

func TestGetOrSetWithoutCache(t *testing.T) {
	calls := 0
	fn := func() ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	got, err := GetOrSet[[]string](nil, context.Background(), "plans", time.Minute, fn)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	_, err = GetOrSet[[]string](nil, context.Background(), "plans", time.Minute, fn)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrSetPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := GetOrSet(nil, context.Background(), "plans", time.Minute, func() (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestInvalidateNilCache(t *testing.T) {
	assert.NotPanics(t, func() {
		Invalidate(nil, context.Background(), "plans")
	})
}

func TestNewRedisCache(t *testing.T) {
	server, _ := testutil.NewFakeRedis(t)

	cache, err := NewRedisCache(context.Background(), server.URL(), "test:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	assert.NotEmpty(t, server.Commands("ping"))
}

func TestGetOrSetCachesUnderPrefix(t *testing.T) {
	server, client := testutil.NewFakeRedis(t)
	cache := NewRedisCacheFromClient(client, "app:", zap.NewNop())
	ctx := context.Background()

	calls := 0
	fn := func() ([]string, error) {
		calls++
		return []string{"netflix", "spotify"}, nil
	}

	got, err := GetOrSet(cache, ctx, "plans:list", time.Minute, fn)
	require.NoError(t, err)
	assert.Equal(t, []string{"netflix", "spotify"}, got)
	assert.True(t, server.Has("app:plans:list"))

	got, err = GetOrSet(cache, ctx, "plans:list", time.Minute, fn)
	require.NoError(t, err)
	assert.Equal(t, []string{"netflix", "spotify"}, got)
	assert.Equal(t, 1, calls)
}

func TestInvalidateDeletesPrefixedKeys(t *testing.T) {
	server, client := testutil.NewFakeRedis(t)
	cache := NewRedisCacheFromClient(client, "app:", zap.NewNop())
	server.Put("app:plans:list", `[]`)

	Invalidate(cache, context.Background(), "plans:list")

	assert.False(t, server.Has("app:plans:list"))
	assert.Equal(t, [][]string{{"app:plans:list"}}, server.Commands("del"))
}
