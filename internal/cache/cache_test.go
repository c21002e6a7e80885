package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(start time.Time) (*Cache, *time.Time) {
	c := New()
	now := start
	c.now = func() time.Time { return now }
	return c, &now
}

func TestSetGet(t *testing.T) {
	c, _ := newTestCache(time.Now())

	c.Set("k", "v", time.Second)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestExpiredEntryIsPurgedOnRead(t *testing.T) {
	c, now := newTestCache(time.Now())

	c.Set("k", "v", time.Second)
	assert.Equal(t, 1, c.Len())

	*now = now.Add(1100 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
	// The read must evict, not just skip.
	assert.Equal(t, 0, c.Len())
}

func TestSetOverwritesAndResetsExpiry(t *testing.T) {
	c, now := newTestCache(time.Now())

	c.Set("k", "old", time.Second)
	*now = now.Add(900 * time.Millisecond)
	c.Set("k", "new", time.Second)

	// Past the original expiry but within the reset one.
	*now = now.Add(900 * time.Millisecond)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestDeleteAndClear(t *testing.T) {
	c, _ := newTestCache(time.Now())

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestKeyIsDeterministic(t *testing.T) {
	assert.Equal(t, Key("list", 1, "x"), Key("list", 1, "x"))
	assert.NotEqual(t, Key("list", 1, "x"), Key("list", 2, "x"))
	assert.NotEqual(t, Key("list", 1), Key("other", 1))
}

func TestMemoizeHitAndMiss(t *testing.T) {
	c, _ := newTestCache(time.Now())

	calls := 0
	fn := func() ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	v, err := Memoize(c, "op", time.Minute, fn, "arg")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)
	assert.Equal(t, 1, calls)

	v, err = Memoize(c, "op", time.Minute, fn, "arg")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)
	assert.Equal(t, 1, calls, "second call should be served from cache")

	_, err = Memoize(c, "op", time.Minute, fn, "other-arg")
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "different args must not share a cache line")
}

func TestMemoizeDoesNotCacheErrors(t *testing.T) {
	c, _ := newTestCache(time.Now())

	calls := 0
	fail := errors.New("store down")
	fn := func() (int, error) {
		calls++
		if calls == 1 {
			return 0, fail
		}
		return 42, nil
	}

	_, err := Memoize(c, "op", time.Minute, fn)
	assert.ErrorIs(t, err, fail)

	v, err := Memoize(c, "op", time.Minute, fn)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, calls)
}
