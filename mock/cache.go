package mock

import (
	"context"

	"github.com/fwojciec/mesa"
)

var _ mesa.QueryCache = (*QueryCache)(nil)

// QueryCache is a mock implementation of mesa.QueryCache.
type QueryCache struct {
	GetFn func(ctx context.Context, key string) ([]byte, bool, error)
	SetFn func(ctx context.Context, key string, value []byte) error
}

func (c *QueryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.GetFn(ctx, key)
}

func (c *QueryCache) Set(ctx context.Context, key string, value []byte) error {
	return c.SetFn(ctx, key, value)
}
