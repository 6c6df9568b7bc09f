package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestTTL_SetAndGet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)}
	c := NewTTL[string, int](5*time.Minute, clock)

	c.Set("a", 42)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestTTL_Miss(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := NewTTL[string, int](5*time.Minute, clock)

	_, ok := c.Get("absent")
	assert.False(t, ok)
}

func TestTTL_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)}
	c := NewTTL[string, int](5*time.Minute, clock)

	c.Set("a", 42)
	clock.advance(5*time.Minute + time.Second)

	_, ok := c.Get("a")
	assert.False(t, ok, "entry should expire after the TTL")
}

func TestTTL_SetRefreshesExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)}
	c := NewTTL[string, int](5*time.Minute, clock)

	c.Set("a", 1)
	clock.advance(4 * time.Minute)
	c.Set("a", 2)
	clock.advance(4 * time.Minute)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}
