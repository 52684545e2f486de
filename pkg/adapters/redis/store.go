package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/aretw0/sortvis/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the cache.
const DefaultPrefix = "sortvis:steps:"

// Cache implements ports.StepCache using Redis.
// Entries are stored as the JSON wire encoding of the step list.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the Redis cache.
type Option func(*Cache)

// WithTTL sets the expiration of cached entries. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix overrides DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New connects to the Redis server at addr.
func New(addr string, opts ...Option) *Cache {
	return NewFromClient(backend.NewClient(&backend.Options{Addr: addr}), opts...)
}

// NewFromClient wraps an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) key(alg domain.Algorithm, values []int) string {
	return c.prefix + ports.CacheKey(alg, values)
}

// Put stores the steps. Step lists are deterministic, so the first writer wins
// and later writes of the same key are skipped with SET NX.
func (c *Cache) Put(ctx context.Context, alg domain.Algorithm, values []int, steps []domain.Step) error {
	payload, err := domain.MarshalSteps(steps)
	if err != nil {
		return fmt.Errorf("failed to encode steps: %w", err)
	}
	if err := c.client.SetNX(ctx, c.key(alg, values), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis error storing steps: %w", err)
	}
	return nil
}

// Get loads and decodes the steps.
func (c *Cache) Get(ctx context.Context, alg domain.Algorithm, values []int) ([]domain.Step, error) {
	payload, err := c.client.Get(ctx, c.key(alg, values)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis error loading steps: %w", err)
	}
	steps, err := domain.UnmarshalSteps(payload)
	if err != nil {
		return nil, fmt.Errorf("corrupt cache entry %q: %w", c.key(alg, values), err)
	}
	return steps, nil
}

// Ping checks connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
