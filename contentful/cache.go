package contentful

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores raw successful API responses keyed by request URL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
	Close() error
}

type cacheItem struct {
	val     []byte
	fetched time.Time
}

// MemoryCache is an in-process response cache with a fixed TTL.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]cacheItem
	ttl   time.Duration
	max   int
	now   func() time.Time
}

// NewMemoryCache creates a MemoryCache holding at most max responses for ttl.
func NewMemoryCache(ttl time.Duration, max int) *MemoryCache {
	if max <= 0 {
		max = 256
	}
	return &MemoryCache{
		items: make(map[string]cacheItem),
		ttl:   ttl,
		max:   max,
		now:   time.Now,
	}
}

func (c *MemoryCache) valid(it cacheItem) bool {
	return c.now().Sub(it.fetched) < c.ttl
}

// Get returns a cached response if it has not expired.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || !c.valid(it) {
		return nil, false
	}
	return it.val, true
}

// Set stores a response, dropping expired entries when the cache is full.
func (c *MemoryCache) Set(_ context.Context, key string, val []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) >= c.max {
		for k, it := range c.items {
			if !c.valid(it) {
				delete(c.items, k)
			}
		}
		if len(c.items) >= c.max {
			c.items = make(map[string]cacheItem)
		}
	}
	c.items[key] = cacheItem{val: val, fetched: c.now()}
}

// Invalidate clears the cache so the next read goes to the API.
func (c *MemoryCache) Invalidate() {
	c.mu.Lock()
	c.items = make(map[string]cacheItem)
	c.mu.Unlock()
}

func (c *MemoryCache) Close() error { return nil }

// RedisCache shares cached responses between instances through Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisCache connects lazily to the Redis server at addr.
func NewRedisCache(addr, password string, db int, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 2,
			MaxRetries:   1,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		}),
		ttl:    ttl,
		prefix: "contentful:",
	}
}

// Ping verifies the connection.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) key(k string) string {
	sum := sha256.Sum256([]byte(k))
	return r.prefix + hex.EncodeToString(sum[:])
}

// Get returns a cached response. Redis errors count as misses.
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

// Set stores a response; failures are ignored since the cache is optional.
func (r *RedisCache) Set(ctx context.Context, key string, val []byte) {
	_ = r.client.Set(ctx, r.key(key), val, r.ttl).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
