package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type item struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// LRUCache is a fixed-capacity byte cache with per-entry TTL. Expired entries
// are dropped lazily on read and swept by the janitor.
type LRUCache struct {
	capacity int
	ttl      time.Duration

	mu      sync.Mutex
	order   *list.List
	entries map[string]*list.Element
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	it := ele.Value.(*item)
	if time.Now().After(it.expiresAt) {
		c.removeElement(ele)
		return nil, false
	}
	c.order.MoveToFront(ele)
	return it.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.entries[key]; ok {
		c.order.MoveToFront(ele)
		it := ele.Value.(*item)
		it.value = value
		it.expiresAt = time.Now().Add(c.ttl)
		return
	}

	ele := c.order.PushFront(&item{key: key, value: value, expiresAt: time.Now().Add(c.ttl)})
	c.entries[key] = ele

	if c.order.Len() > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

// Delete drops the entry for key, if present. Used to invalidate cached
// orders when their status changes.
func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.entries[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Start launches the janitor goroutine; it satisfies the application starter
// interface and stops with the context.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.sweep()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for ele := c.order.Back(); ele != nil; {
		prev := ele.Prev()
		if now.After(ele.Value.(*item).expiresAt) {
			c.removeElement(ele)
		}
		ele = prev
	}
}

func (c *LRUCache) removeElement(ele *list.Element) {
	c.order.Remove(ele)
	delete(c.entries, ele.Value.(*item).key)
}
