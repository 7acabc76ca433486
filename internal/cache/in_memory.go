package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is an in-process implementation of Store, used when no Redis
// instance is configured.
type MemoryStore struct {
	store *gocache.Cache
}

func NewMemoryStore(defaultExpiration, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		store: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	value, found := s.store.Get(key)
	if !found {
		return nil, ErrCacheNotFound
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil, ErrCacheFailedToGet
	}

	return bytes, nil
}

func (s *MemoryStore) Set(key string, value []byte, ttl time.Duration) error {
	s.store.Set(key, value, ttl)
	return nil
}

func (s *MemoryStore) Del(keys ...string) error {
	for _, key := range keys {
		s.store.Delete(key)
	}
	return nil
}
