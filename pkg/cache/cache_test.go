package cache_test

import (
	"testing"
	"time"

	"github.com/velesmarket/payment-service/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache_SetGet(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("1"), got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLRUCache_EvictsOldest(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	// touch "a" so "b" becomes the eviction candidate
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", []byte("3"))

	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Size())
}

func TestLRUCache_TTLExpiry(t *testing.T) {
	c := cache.NewLRUCache(10, 10*time.Millisecond)

	c.Set("a", []byte("1"))
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestLRUCache_Delete(t *testing.T) {
	c := cache.NewLRUCache(10, time.Minute)

	c.Set("a", []byte("1"))
	c.Delete("a")
	c.Delete("missing")

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_OverwriteRefreshes(t *testing.T) {
	c := cache.NewLRUCache(10, time.Minute)

	c.Set("a", []byte("1"))
	c.Set("a", []byte("2"))

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("2"), got)
	assert.Equal(t, 1, c.Size())
}
