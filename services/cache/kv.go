package cache

import (
	"context"
	"encoding/json"
	"errors"

	"sjsage522/zenlesscollector/logger"
	apperrors "sjsage522/zenlesscollector/pkg/errors"
)

// KVStore keeps the snapshot as one JSON value in a CacheService
type KVStore struct {
	svc  CacheService
	key  string
	name string
	log  *logger.Logger
}

// NewKVStore creates a snapshot store on top of a key/value cache
func NewKVStore(name string, svc CacheService, key string) *KVStore {
	return &KVStore{svc: svc, key: key, name: name, log: logger.ForStore()}
}

// Name returns the backend name
func (s *KVStore) Name() string {
	return s.name
}

// Load fetches and decodes the snapshot; a missing key is the first run
func (s *KVStore) Load(ctx context.Context) (Snapshot, error) {
	data, err := s.svc.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, apperrors.NewCache(s.name, "get "+s.key, err)
	}

	snapshot := Snapshot{}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, apperrors.NewCache(s.name, "decode "+s.key, err)
	}
	return snapshot, nil
}

// Save replaces the snapshot value without expiry
func (s *KVStore) Save(ctx context.Context, snapshot Snapshot) error {
	if snapshot == nil {
		snapshot = Snapshot{}
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return apperrors.NewCache(s.name, "encode snapshot", err)
	}
	if err := s.svc.Set(ctx, s.key, data, 0); err != nil {
		return apperrors.NewCache(s.name, "set "+s.key, err)
	}

	s.log.Debug().Str("backend", s.name).Str("key", s.key).Int("codes", len(snapshot)).Msg("Saved code snapshot")
	return nil
}
