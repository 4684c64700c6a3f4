package redis

import (
	"context"
	"labdash-service/internal/app/contracts"
	"time"

	"github.com/goccy/go-json"
)

type collectionCache struct {
	repository contracts.RedisRepository
}

func NewCollectionCache(repository contracts.RedisRepository) contracts.CollectionCache {
	return &collectionCache{repository: repository}
}

func (c *collectionCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.repository.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// A corrupt entry behaves like a miss so the caller refetches.
		_ = c.repository.Delete(ctx, key)
		return false, nil
	}
	return true, nil
}

func (c *collectionCache) SetJSON(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return c.repository.Set(ctx, key, value, exp)
}

func (c *collectionCache) Invalidate(ctx context.Context, key string) error {
	return c.repository.Delete(ctx, key)
}
