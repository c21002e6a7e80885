// Package ratelimit caps requests per client inside a sliding time window.
// Bookkeeping is process-local; each server instance enforces its own
// quota independently.
package ratelimit

import (
	"sync"
	"time"
)

type Limiter struct {
	mu      sync.Mutex
	clients map[string][]time.Time
	now     func() time.Time
}

func New() *Limiter {
	return &Limiter{
		clients: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow reports whether a request from clientID fits within max requests
// per window. Timestamps outside the window are pruned before the check,
// and only accepted requests are recorded, so a hammering client never
// grows its timestamp list past max.
func (l *Limiter) Allow(clientID string, max int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-window)

	recent := l.clients[clientID][:0]
	for _, ts := range l.clients[clientID] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= max {
		l.clients[clientID] = recent
		return false
	}

	l.clients[clientID] = append(recent, now)
	return true
}

// Sweep drops clients whose window has fully aged out. Purely a memory
// hygiene measure; Allow stays correct without it.
func (l *Limiter) Sweep(window time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-window)
	removed := 0
	for id, stamps := range l.clients {
		live := false
		for _, ts := range stamps {
			if ts.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(l.clients, id)
			removed++
		}
	}
	return removed
}

// Clients reports how many client windows are currently tracked.
func (l *Limiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
