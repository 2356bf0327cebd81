package adapter

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisClient defines the interface for Redis operations to enable mocking
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) error

	// HGetAll returns all fields and values of the hash stored at key
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// HGet returns the value of a hash field, with a found flag
	HGet(ctx context.Context, key, field string) (string, bool, error)

	// Close closes the Redis connection
	Close() error
}

// RealRedisClient wraps the actual Redis client
type RealRedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client
func NewRedisClient(addr, password string, db int) RedisClient {
	return &RealRedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Ping checks if Redis is reachable
func (r *RealRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// HGetAll returns all fields and values of the hash stored at key
func (r *RealRedisClient) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return r.client.HGetAll(ctx, key).Result()
}

// HGet returns the value of a hash field, with a found flag
func (r *RealRedisClient) HGet(ctx context.Context, key, field string) (string, bool, error) {
	val, err := r.client.HGet(ctx, key, field).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Close closes the Redis connection
func (r *RealRedisClient) Close() error {
	return r.client.Close()
}
