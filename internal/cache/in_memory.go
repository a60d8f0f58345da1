package cache

import (
	"context"
	"sync"
	"time"
)

const cleanInterval = 5 * time.Second

type item[T any] struct {
	v      T
	expiry time.Time
}

func (i item[T]) isExpired(now time.Time) bool {
	return now.After(i.expiry)
}

type InMemory[T any] struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]item[T]
}

// NewInMemory returns a cache whose entries live for ttl. Expired entries are
// swept until ctx is done.
func NewInMemory[T any](ctx context.Context, ttl time.Duration) *InMemory[T] {
	c := &InMemory[T]{
		data: make(map[string]item[T]),
		ttl:  ttl,
	}

	go c.clean(ctx)
	return c
}

func (m *InMemory[T]) Set(key string, val T) {
	if m.ttl <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = item[T]{
		v:      val,
		expiry: time.Now().Add(m.ttl),
	}
}

func (m *InMemory[T]) Get(key string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, found := m.data[key]
	if !found || val.isExpired(time.Now()) {
		var t T
		return t, false
	}
	return val.v, true
}

func (m *InMemory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *InMemory[T]) clean(ctx context.Context) {
	ticker := time.NewTicker(cleanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.mu.Lock()
			for k, v := range m.data {
				if v.isExpired(now) {
					delete(m.data, k)
				}
			}
			m.mu.Unlock()
		}
	}
}
