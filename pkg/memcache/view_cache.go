// pkg/memcache/view_cache.go
package mem

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ViewCache holds rendered views derived from the schedule file.
// Anything that rewrites the file must call Purge.
type ViewCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Purge()
}

type LRUViewCache struct {
	lru *expirable.LRU[string, any]
}

func NewViewCache(size int, ttl time.Duration) *LRUViewCache {
	if size <= 0 {
		size = 16
	}
	return &LRUViewCache{
		lru: expirable.NewLRU[string, any](size, nil, ttl),
	}
}

func (c *LRUViewCache) Get(key string) (any, bool) {
	return c.lru.Get(key)
}

func (c *LRUViewCache) Set(key string, value any) {
	c.lru.Add(key, value)
}

func (c *LRUViewCache) Purge() {
	c.lru.Purge()
}

func (c *LRUViewCache) Len() int {
	return c.lru.Len()
}
