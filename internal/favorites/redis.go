package favorites

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"manageme.app/hub/internal/store"
)

type redisKV struct {
	client *redis.Client
}

// NewRedisKV adapts a redis client to the KV surface, translating
// redis.Nil to store.ErrNotFound.
func NewRedisKV(client *redis.Client) KV {
	return &redisKV{client: client}
}

func (r *redisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", store.ErrNotFound
		}
		return "", err
	}
	return val, nil
}

func (r *redisKV) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}
