package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}

// CollectionCache is the invalidation-keyed cache in front of vendor
// collection reads. Mutating flows call Invalidate with the collection key;
// there is no partial update path.
type CollectionCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Invalidate(ctx context.Context, key string) error
}
