package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// This test requires a running memcached instance
// If memcached is not available, the test will be skipped
func TestMemcacheService(t *testing.T) {
	ctx := context.Background()
	mc := NewMemcacheService("localhost:11211")

	if err := mc.Ping(); err != nil {
		t.Skip("Memcached is not available, skipping test")
	}

	err := mc.Set(ctx, "test_key", []byte("test_value"), 1*time.Second)
	assert.NoError(t, err)

	value, err := mc.Get(ctx, "test_key")
	assert.NoError(t, err)
	assert.Equal(t, "test_value", string(value))

	err = mc.Delete(ctx, "test_key")
	assert.NoError(t, err)

	_, err = mc.Get(ctx, "test_key")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing key is not an error
	assert.NoError(t, mc.Delete(ctx, "test_key"))
}

func TestMemcacheSnapshotStore(t *testing.T) {
	ctx := context.Background()
	mc := NewMemcacheService("localhost:11211")

	if err := mc.Ping(); err != nil {
		t.Skip("Memcached is not available, skipping test")
	}
	defer mc.Delete(ctx, "test_zenless_codes")

	store := NewKVStore("memcache", mc, "test_zenless_codes")
	assert.NoError(t, store.Save(ctx, Snapshot{"ABCDEF123": 500}))

	snapshot, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, Snapshot{"ABCDEF123": 500}, snapshot)
}
