package apicache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetSetRoundTrip(t *testing.T) {
	c := New(time.Minute)
	c.Set("candidates", []int{1, 2, 3})

	got, ok := c.Get("candidates")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestExpiredEntryIsAbsentAndPurged(t *testing.T) {
	now := time.Now()
	c := New(30 * time.Second)
	c.now = func() time.Time { return now }

	c.Set("k", "v")

	now = now.Add(31 * time.Second)
	_, ok := c.Get("k")
	assert.False(t, ok, "entry past TTL reads as a miss")

	// The read purged it: even rolling time back cannot revive the entry.
	now = now.Add(-31 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestEntryAtExactTTLStillFresh(t *testing.T) {
	now := time.Now()
	c := New(30 * time.Second)
	c.now = func() time.Time { return now }

	c.Set("k", "v")
	now = now.Add(30 * time.Second)

	_, ok := c.Get("k")
	assert.True(t, ok)
}

func TestClearSelectedAndAll(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)

	c.Clear()
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	c := New(0)
	assert.Equal(t, DefaultTTL, c.ttl)
}
