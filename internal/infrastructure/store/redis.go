package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisStore backs the key-value surface with Redis, for deployments where
// cached lookups should survive restarts and be shared between replicas.
type RedisStore struct {
	c *redis.Client
}

// NewRedisStore creates a store backed by the Redis instance at addr
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		c: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

// Get retrieves a value; the second return reports presence
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.c.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "redis get")
	}
	return val, true, nil
}

// Set stores a value under a key without expiry; validity lives in the
// payload, not the store
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.c.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}
	return nil
}

// Remove deletes a key
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.c.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}
	return nil
}

// Keys enumerates every stored key via SCAN
func (s *RedisStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := s.c.Scan(ctx, 0, "*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "redis scan")
	}
	return keys, nil
}

// RemoveMany deletes the given keys in one DEL call
func (s *RedisStore) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.c.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "redis del many")
	}
	return nil
}
