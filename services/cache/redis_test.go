package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// This test requires a running Redis instance
func TestRedisService(t *testing.T) {
	ctx := context.Background()
	r := NewRedisService("localhost:6379", 0)
	defer r.Close()

	if err := r.client.Ping(ctx).Err(); err != nil {
		t.Skip("Redis is not available, skipping test")
	}
	defer r.Delete(ctx, "test_zenless_snapshot")

	_, err := r.Get(ctx, "test_zenless_snapshot")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, r.Set(ctx, "test_zenless_snapshot", []byte(`{"A":10}`), time.Minute))

	value, err := r.Get(ctx, "test_zenless_snapshot")
	assert.NoError(t, err)
	assert.Equal(t, `{"A":10}`, string(value))

	store := NewKVStore("redis", r, "test_zenless_snapshot")
	snapshot, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, Snapshot{"A": 10}, snapshot)
}
