package utils

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(4)

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	c.Set(ctx, "a", []byte("one"), time.Minute)
	got, ok := c.Get(ctx, "a")
	if !ok {
		t.Fatal("Get after Set reported a miss")
	}
	if string(got) != "one" {
		t.Errorf("got %q, want %q", got, "one")
	}
}

func TestMemoryCacheTTLExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(4)

	c.Set(ctx, "a", []byte("one"), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get(ctx, "a"); ok {
		t.Error("expired entry still returned")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after expiry read, want 0", c.Len())
	}
}

func TestMemoryCacheZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(4)

	c.Set(ctx, "a", []byte("one"), 0)
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get(ctx, "a"); !ok {
		t.Error("entry with zero ttl expired")
	}
}

func TestMemoryCacheEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	c.Set(ctx, "a", []byte("1"), time.Minute)
	c.Set(ctx, "b", []byte("2"), time.Minute)

	// Touch "a" so "b" becomes the eviction candidate.
	if _, ok := c.Get(ctx, "a"); !ok {
		t.Fatal("warm read of a missed")
	}

	c.Set(ctx, "c", []byte("3"), time.Minute)

	if _, ok := c.Get(ctx, "b"); ok {
		t.Error("least recently used entry survived eviction")
	}
	if _, ok := c.Get(ctx, "a"); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.Get(ctx, "c"); !ok {
		t.Error("newest entry was evicted")
	}
}

func TestMemoryCacheCapacityFloor(t *testing.T) {
	c := NewMemoryCache(0)
	ctx := context.Background()

	c.Set(ctx, "a", []byte("1"), time.Minute)
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	c.Set(ctx, "b", []byte("2"), time.Minute)
	if c.Len() != 1 {
		t.Errorf("Len() = %d after second insert, want 1", c.Len())
	}
}

func TestMemoryCacheFlushPrefix(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(8)

	c.Set(ctx, "horizon:all", []byte("1"), time.Minute)
	c.Set(ctx, "horizon:2025-06-01", []byte("2"), time.Minute)
	c.Set(ctx, "calendar:2025-06-01:2025-06-07", []byte("3"), time.Minute)

	c.Flush(ctx, "horizon:")

	if _, ok := c.Get(ctx, "horizon:all"); ok {
		t.Error("flushed key horizon:all still present")
	}
	if _, ok := c.Get(ctx, "horizon:2025-06-01"); ok {
		t.Error("flushed key horizon:2025-06-01 still present")
	}
	if _, ok := c.Get(ctx, "calendar:2025-06-01:2025-06-07"); !ok {
		t.Error("key outside flushed prefix was removed")
	}
}

func TestMemoryCacheSetOverwrites(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	c.Set(ctx, "a", []byte("old"), time.Minute)
	c.Set(ctx, "a", []byte("new"), time.Minute)

	got, ok := c.Get(ctx, "a")
	if !ok {
		t.Fatal("overwritten key missing")
	}
	if string(got) != "new" {
		t.Errorf("got %q, want %q", got, "new")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after overwrite, want 1", c.Len())
	}
}

func TestMemoryCacheReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	c.Set(ctx, "a", []byte("abc"), time.Minute)
	got, _ := c.Get(ctx, "a")
	got[0] = 'x'

	again, _ := c.Get(ctx, "a")
	if string(again) != "abc" {
		t.Errorf("cached value mutated through returned slice: got %q", again)
	}
}
