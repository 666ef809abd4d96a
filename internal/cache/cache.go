package cache

import (
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Common cache errors
var (
	ErrCacheMiss     = errors.New("cache miss")
	ErrCacheDisabled = errors.New("cache is disabled")
)

// Store is the in-process hot layer sitting in front of the Postgres cache
// rows. It only saves repeat work within one process lifetime; the database
// remains the cache of record.
type Store interface {
	// Get retrieves a value from cache by key
	Get(key string) ([]byte, error)
	// Set stores a value in cache with the given TTL
	Set(key string, value []byte, ttl time.Duration) error
	// Delete removes a value from cache
	Delete(key string) error
	// Clear removes all items from cache
	Clear()
}

// StoreConfig holds configuration for the in-memory store
type StoreConfig struct {
	DefaultTTL      time.Duration
	CleanupInterval time.Duration
	Enabled         bool
}

// DefaultStoreConfig returns a sensible default configuration
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		DefaultTTL:      5 * time.Minute,
		CleanupInterval: 10 * time.Minute,
		Enabled:         true,
	}
}

// InMemoryStore implements Store using go-cache
type InMemoryStore struct {
	cache   *gocache.Cache
	config  StoreConfig
	enabled bool
}

// NewInMemoryStore creates a new in-memory store instance
func NewInMemoryStore(config StoreConfig) *InMemoryStore {
	return &InMemoryStore{
		cache:   gocache.New(config.DefaultTTL, config.CleanupInterval),
		config:  config,
		enabled: config.Enabled,
	}
}

// Get retrieves a value from the cache
func (c *InMemoryStore) Get(key string) ([]byte, error) {
	if !c.enabled {
		return nil, ErrCacheDisabled
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}

	return data, nil
}

// Set stores a value in the cache with the given TTL
func (c *InMemoryStore) Set(key string, value []byte, ttl time.Duration) error {
	if !c.enabled {
		return nil
	}

	if ttl <= 0 {
		ttl = c.config.DefaultTTL
	}

	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a value from the cache
func (c *InMemoryStore) Delete(key string) error {
	if !c.enabled {
		return nil
	}

	c.cache.Delete(key)
	return nil
}

// Clear removes all items from the cache
func (c *InMemoryStore) Clear() {
	if c.enabled {
		c.cache.Flush()
	}
}

// NoOpStore implements Store but does nothing (used when caching is disabled)
type NoOpStore struct{}

// NewNoOpStore creates a new no-op store instance
func NewNoOpStore() *NoOpStore {
	return &NoOpStore{}
}

// Get always returns cache disabled
func (c *NoOpStore) Get(key string) ([]byte, error) {
	return nil, ErrCacheDisabled
}

// Set does nothing
func (c *NoOpStore) Set(key string, value []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing
func (c *NoOpStore) Delete(key string) error {
	return nil
}

// Clear does nothing
func (c *NoOpStore) Clear() {}
