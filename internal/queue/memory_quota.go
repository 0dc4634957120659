package queue

import (
	"context"
	"sync"
	"time"
)

// MemoryQuota is the single-process fixed window counter. It backs the
// per-IP request limiter and stands in for Redis when Redis is disabled.
// Expired windows are swept at most once per window.
type MemoryQuota struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	count int
	start time.Time
}

func NewMemoryQuota(limit int, window time.Duration) *MemoryQuota {
	return &MemoryQuota{
		limit:   limit,
		window:  window,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

func (m *MemoryQuota) Acquire(ctx context.Context, key string) error {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweepLocked(now)

	b, ok := m.buckets[key]
	if !ok || now.Sub(b.start) >= m.window {
		b = &bucket{start: now}
		m.buckets[key] = b
	}

	if b.count >= m.limit {
		return ErrQuotaExceeded
	}
	b.count++
	return nil
}

func (m *MemoryQuota) sweepLocked(now time.Time) {
	if now.Sub(m.lastSweep) < m.window {
		return
	}
	for key, b := range m.buckets {
		if now.Sub(b.start) >= m.window {
			delete(m.buckets, key)
		}
	}
	m.lastSweep = now
}

func (m *MemoryQuota) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buckets)
}
