//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"scheduling-core/internal/infra/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	values  map[string]string
	getErr  error
	setErr  error
	lastTTL time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (f *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeStore) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.values[key] = value.(string)
	f.lastTTL = expiration
	return redis.NewStatusResult("OK", nil)
}

type countingDirectory struct {
	names map[uuid.UUID]string
	err   error
	calls int
}

func (c *countingDirectory) DisplayName(_ context.Context, id uuid.UUID) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.names[id], nil
}

func TestClientDirectory_DisplayName(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	t.Run("miss loads from store and caches", func(t *testing.T) {
		store := newFakeStore()
		next := &countingDirectory{names: map[uuid.UUID]string{clientID: "Ada"}}
		dir := cache.NewClientDirectory(next, store, time.Minute, "")

		first, err := dir.DisplayName(ctx, clientID)
		require.NoError(t, err)
		second, err := dir.DisplayName(ctx, clientID)
		require.NoError(t, err)

		assert.Equal(t, "Ada", first)
		assert.Equal(t, "Ada", second)
		assert.Equal(t, 1, next.calls)
		assert.Equal(t, time.Minute, store.lastTTL)
		assert.Equal(t, "Ada", store.values["client:name:"+clientID.String()])
	})

	t.Run("redis failure falls through", func(t *testing.T) {
		store := newFakeStore()
		store.getErr = errors.New("connection refused")
		store.setErr = errors.New("connection refused")
		next := &countingDirectory{names: map[uuid.UUID]string{clientID: "Ada"}}
		dir := cache.NewClientDirectory(next, store, 0, "names")

		name, err := dir.DisplayName(ctx, clientID)

		require.NoError(t, err)
		assert.Equal(t, "Ada", name)
		assert.Equal(t, 1, next.calls)
	})

	t.Run("directory error is not cached", func(t *testing.T) {
		store := newFakeStore()
		next := &countingDirectory{err: errors.New("not found")}
		dir := cache.NewClientDirectory(next, store, time.Minute, "")

		_, err := dir.DisplayName(ctx, clientID)

		require.Error(t, err)
		assert.Empty(t, store.values)
	})
}
