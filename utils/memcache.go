package utils

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryCache is a bounded in-process Cache with LRU eviction and per-entry
// TTL. It backs deployments that run without Redis. A ttl of zero stores the
// entry without expiry, matching Redis SET semantics.
type MemoryCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front is most recently used
}

type memEntry struct {
	key       string
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// NewMemoryCache returns a cache holding at most capacity entries; the least
// recently used entry is evicted first. Capacities below 1 are raised to 1.
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity < 1 {
		capacity = 1
	}
	return &MemoryCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	ent := el.Value.(*memEntry)
	if !ent.expiresAt.IsZero() && time.Now().After(ent.expiresAt) {
		c.remove(el)
		return nil, false
	}
	c.order.MoveToFront(el)
	out := make([]byte, len(ent.value))
	copy(out, ent.value)
	return out, true
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	stored := make([]byte, len(value))
	copy(stored, value)

	if el, ok := c.entries[key]; ok {
		ent := el.Value.(*memEntry)
		ent.value = stored
		ent.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&memEntry{key: key, value: stored, expiresAt: expiresAt})
	c.entries[key] = el
	for len(c.entries) > c.capacity {
		c.remove(c.order.Back())
	}
}

func (c *MemoryCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.remove(el)
	}
}

func (c *MemoryCache) Flush(_ context.Context, prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, el := range c.entries {
		if strings.HasPrefix(key, prefix) {
			c.remove(el)
		}
	}
}

// Len reports the number of live entries.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove must be called with the lock held.
func (c *MemoryCache) remove(el *list.Element) {
	if el == nil {
		return
	}
	ent := el.Value.(*memEntry)
	delete(c.entries, ent.key)
	c.order.Remove(el)
}
