// Package throttle provides keyed token buckets driven by an injectable clock.
package throttle

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter *rate.Limiter
	seen    time.Time
}

// Limiter keeps one bucket per key. Keys left alone long enough to refill
// completely are dropped, since a full bucket behaves like a new one.
type Limiter struct {
	every time.Duration
	burst int
	now   func() time.Time

	mu        sync.Mutex
	items     map[string]*entry
	idle      time.Duration
	lastSweep time.Time
}

// New allows burst events per key, refilling one token every interval.
func New(every time.Duration, burst int, now func() time.Time) *Limiter {
	if burst <= 0 {
		burst = 1
	}
	if now == nil {
		now = time.Now
	}
	return &Limiter{
		every: every,
		burst: burst,
		now:   now,
		items: make(map[string]*entry),
		idle:  every * time.Duration(burst),
	}
}

func (l *Limiter) Allow(key string) bool {
	if l == nil || l.every <= 0 {
		return true
	}

	now := l.now()

	l.mu.Lock()
	l.sweep(now)
	item, ok := l.items[key]
	if !ok {
		item = &entry{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.items[key] = item
	}
	item.seen = now
	l.mu.Unlock()

	return item.limiter.AllowN(now, 1)
}

// sweep runs at most once per idle window. Caller holds mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	l.lastSweep = now
	for key, item := range l.items {
		if now.Sub(item.seen) >= l.idle {
			delete(l.items, key)
		}
	}
}

// Len reports how many keys are tracked.
func (l *Limiter) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}
