package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetMiss(t *testing.T) {
	c := New[string](time.Minute)

	v, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestCache_WriteThroughAndGet(t *testing.T) {
	c := New[bool](time.Minute)

	c.WriteThrough("k", true)

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.True(t, v)
}

func TestCache_TTLExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	clock := func() time.Time { return now }

	c := NewWithClock[string](time.Minute, clock)
	c.WriteThrough("k", "v")

	now = now.Add(59 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestCache_ZeroTTLNeverExpires(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := NewWithClock[string](0, func() time.Time { return now })

	c.WriteThrough("k", "v")
	now = now.Add(24 * time.Hour)

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestCache_WriteThroughRefreshesTTL(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := NewWithClock[string](time.Minute, func() time.Time { return now })

	c.WriteThrough("k", "old")
	now = now.Add(50 * time.Second)
	c.WriteThrough("k", "new")
	now = now.Add(50 * time.Second)

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestCache_Invalidate(t *testing.T) {
	c := New[string](0)

	c.WriteThrough("k", "v")
	c.Invalidate("k")

	_, ok := c.Get("k")
	assert.False(t, ok)

	// Invalidating an absent key is a no-op.
	c.Invalidate("missing")
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int](time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := "k" + strconv.Itoa(i%10)
			c.WriteThrough(key, i)
			c.Get(key)
			if i%3 == 0 {
				c.Invalidate(key)
			}
		}(i)
	}
	wg.Wait()
}

func TestApproveAllKey_CaseInsensitive(t *testing.T) {
	a := ApproveAllKey("0xAbC", "0xDeF")
	b := ApproveAllKey("0xabc", "0xdef")
	assert.Equal(t, a, b)
}

func TestKeyNamespaces(t *testing.T) {
	// The same owner and token id must never collide across concerns.
	assert.NotEqual(t, ApproveSingleKey("1"), ApproveAllKey("1", "1"))
}
