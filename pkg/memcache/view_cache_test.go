package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestViewCacheGetSetPurge(t *testing.T) {
	cache := NewViewCache(0, time.Minute)

	_, ok := cache.Get("summary")
	assert.False(t, ok)

	cache.Set("summary", 42)
	cache.Set("days", []int{1, 2})
	value, ok := cache.Get("summary")
	assert.True(t, ok)
	assert.Equal(t, 42, value)
	assert.Equal(t, 2, cache.Len())

	cache.Purge()
	assert.Zero(t, cache.Len())
	_, ok = cache.Get("days")
	assert.False(t, ok)
}

func TestViewCacheExpires(t *testing.T) {
	cache := NewViewCache(4, 20*time.Millisecond)
	cache.Set("days", "rendered")

	assert.Eventually(t, func() bool {
		_, ok := cache.Get("days")
		return !ok
	}, time.Second, 10*time.Millisecond)
}
