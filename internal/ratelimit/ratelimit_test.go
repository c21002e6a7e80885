package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(start time.Time) (*Limiter, *time.Time) {
	l := New()
	now := start
	l.now = func() time.Time { return now }
	return l, &now
}

func TestAllowSlidingWindow(t *testing.T) {
	l, now := newTestLimiter(time.Now())

	// Three rapid requests pass, the fourth is rejected.
	assert.True(t, l.Allow("1.2.3.4", 3, time.Minute))
	assert.True(t, l.Allow("1.2.3.4", 3, time.Minute))
	assert.True(t, l.Allow("1.2.3.4", 3, time.Minute))
	assert.False(t, l.Allow("1.2.3.4", 3, time.Minute))

	// Past the window the quota frees up again.
	*now = now.Add(61 * time.Second)
	assert.True(t, l.Allow("1.2.3.4", 3, time.Minute))
}

func TestRejectionsDoNotConsumeQuota(t *testing.T) {
	l, now := newTestLimiter(time.Now())

	for i := 0; i < 2; i++ {
		assert.True(t, l.Allow("c", 2, time.Minute))
	}
	// A burst of rejected requests must not extend the lockout.
	for i := 0; i < 10; i++ {
		assert.False(t, l.Allow("c", 2, time.Minute))
	}

	*now = now.Add(61 * time.Second)
	assert.True(t, l.Allow("c", 2, time.Minute))
}

func TestClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(time.Now())

	assert.True(t, l.Allow("a", 1, time.Minute))
	assert.False(t, l.Allow("a", 1, time.Minute))
	assert.True(t, l.Allow("b", 1, time.Minute))
}

func TestWindowBoundaryAging(t *testing.T) {
	l, now := newTestLimiter(time.Now())

	assert.True(t, l.Allow("c", 2, time.Minute))
	*now = now.Add(30 * time.Second)
	assert.True(t, l.Allow("c", 2, time.Minute))
	assert.False(t, l.Allow("c", 2, time.Minute))

	// First timestamp ages out; one slot opens even though the second
	// request is still inside the window.
	*now = now.Add(31 * time.Second)
	assert.True(t, l.Allow("c", 2, time.Minute))
	assert.False(t, l.Allow("c", 2, time.Minute))
}

func TestSweepRemovesIdleClients(t *testing.T) {
	l, now := newTestLimiter(time.Now())

	l.Allow("a", 5, time.Minute)
	l.Allow("b", 5, time.Minute)
	assert.Equal(t, 2, l.Clients())

	*now = now.Add(2 * time.Minute)
	l.Allow("b", 5, time.Minute)

	removed := l.Sweep(time.Minute)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, l.Clients())
}
