package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by a CacheService when the key does not exist
var ErrNotFound = errors.New("cache: key not found")

// CacheService represents a generic key/value cache service
type CacheService interface {
	// Get retrieves a value from the cache
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache; zero expiration keeps it forever
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error

	// Delete removes a value from the cache
	Delete(ctx context.Context, key string) error
}

// Snapshot maps each code of the last fetch to its reward
type Snapshot map[string]int

// CodeStore persists the snapshot of the last fetched active-code set
type CodeStore interface {
	// Load returns the previous snapshot; a missing snapshot is empty, not an error
	Load(ctx context.Context) (Snapshot, error)

	// Save replaces the stored snapshot entirely
	Save(ctx context.Context, snapshot Snapshot) error

	// Name identifies the backend in logs
	Name() string
}
