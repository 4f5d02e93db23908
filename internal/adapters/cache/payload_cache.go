package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// RistrettoPayloadCache keeps raw upstream payloads keyed by source URL.
// Cost is the payload size in bytes.
type RistrettoPayloadCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewPayloadCache(maxBytes int64, ttl time.Duration) (*RistrettoPayloadCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * 1024,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create payload cache failed: %w", err)
	}
	return &RistrettoPayloadCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoPayloadCache) Get(url string) ([]byte, bool) {
	if v, ok := c.cache.Get(url); ok {
		payload, ok := v.([]byte)
		return payload, ok
	}
	return nil, false
}

func (c *RistrettoPayloadCache) Set(url string, payload []byte) {
	if c.ttl <= 0 {
		return
	}
	c.cache.SetWithTTL(url, payload, int64(len(payload)), c.ttl)
}

func (c *RistrettoPayloadCache) Del(url string) { c.cache.Del(url) }

func (c *RistrettoPayloadCache) Close() { c.cache.Close() }
