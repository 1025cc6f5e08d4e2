package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisRemote keeps the document as one string value at
// "<collection>:<record>".
type RedisRemote struct {
	client *redis.Client
	key    string
}

// NewRedisRemote creates a remote from a redis:// URL.
func NewRedisRemote(redisURL string, addr Address) (*RedisRemote, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("store: parse redis url: %w", err)
	}
	return NewRedisRemoteWithClient(redis.NewClient(opts), addr), nil
}

// NewRedisRemoteWithClient creates a remote from an existing client.
func NewRedisRemoteWithClient(client *redis.Client, addr Address) *RedisRemote {
	return &RedisRemote{
		client: client,
		key:    addr.Collection + ":" + addr.Record,
	}
}

func (r *RedisRemote) Get(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: redis get %s: %w", r.key, err)
	}
	return data, nil
}

func (r *RedisRemote) Put(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("store: redis set %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisRemote) Close() error {
	return r.client.Close()
}
