package cache

import (
	"testing"
	"time"
)

func TestGetSetRoundTrip(t *testing.T) {
	c := NewTTL[[]float32](time.Minute, 10)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss for unset key")
	}

	c.Set("a", []float32{1, 2, 3})
	got, ok := c.Get("a")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if len(got) != 3 || got[0] != 1 {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestExpiry(t *testing.T) {
	c := NewTTL[string](time.Minute, 10)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("k", "v")

	now = now.Add(30 * time.Second)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry expired before TTL elapsed")
	}

	now = now.Add(31 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry survived past TTL")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry not removed, len=%d", c.Len())
	}
}

func TestEvictionAtCapacity(t *testing.T) {
	c := NewTTL[int](time.Minute, 2)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("first", 1)
	now = now.Add(time.Second)
	c.Set("second", 2)
	now = now.Add(time.Second)
	c.Set("third", 3)

	if c.Len() != 2 {
		t.Fatalf("cache exceeded capacity, len=%d", c.Len())
	}
	if _, ok := c.Get("first"); ok {
		t.Fatal("expected oldest entry to be evicted")
	}
	if _, ok := c.Get("third"); !ok {
		t.Fatal("newest entry missing after eviction")
	}
}

func TestOverwriteRefreshesTTL(t *testing.T) {
	c := NewTTL[int](time.Minute, 10)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("k", 1)
	now = now.Add(50 * time.Second)
	c.Set("k", 2)
	now = now.Add(50 * time.Second)

	got, ok := c.Get("k")
	if !ok {
		t.Fatal("entry expired despite refresh")
	}
	if got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}
