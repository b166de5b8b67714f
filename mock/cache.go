package mock

import (
	"context"
	"time"

	"github.com/fwojciec/luminary"
)

var _ luminary.Cache = (*Cache)(nil)

// Cache is a mock implementation of luminary.Cache.
type Cache struct {
	GetFn   func(ctx context.Context, namespace, key string) ([]byte, bool, error)
	SetFn   func(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error
	EvictFn func(ctx context.Context) (int, error)
}

func (c *Cache) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	return c.GetFn(ctx, namespace, key)
}

func (c *Cache) Set(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error {
	return c.SetFn(ctx, namespace, key, value, ttl)
}

func (c *Cache) Evict(ctx context.Context) (int, error) {
	return c.EvictFn(ctx)
}
