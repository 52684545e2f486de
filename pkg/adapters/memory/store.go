package memory

import (
	"context"
	"sync"

	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/aretw0/sortvis/pkg/ports"
)

// DefaultMaxEntries bounds a Cache built without WithMaxEntries.
const DefaultMaxEntries = 256

// Cache implements ports.StepCache in memory, evicting the oldest entry once
// it holds maxEntries step lists.
// Safe for concurrent use.
type Cache struct {
	data       map[string][]domain.Step
	order      []string
	maxEntries int
	mu         sync.RWMutex
}

// Option configures a Cache.
type Option func(*Cache)

// WithMaxEntries sets the entry bound. Values below 1 keep the default.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// NewCache creates a new in-memory step cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		data:       make(map[string][]domain.Step),
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Put stores a copy of the steps.
func (c *Cache) Put(ctx context.Context, alg domain.Algorithm, values []int, steps []domain.Step) error {
	// Steps are value types, a shallow copy of the slice is enough for isolation.
	copied := append([]domain.Step(nil), steps...)
	key := ports.CacheKey(alg, values)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; !ok {
		for len(c.order) >= c.maxEntries {
			delete(c.data, c.order[0])
			c.order = c.order[1:]
		}
		c.order = append(c.order, key)
	}
	c.data[key] = copied
	return nil
}

// Get retrieves a copy of the cached steps.
func (c *Cache) Get(ctx context.Context, alg domain.Algorithm, values []int) ([]domain.Step, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	steps, ok := c.data[ports.CacheKey(alg, values)]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return append([]domain.Step(nil), steps...), nil
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
