package cooldown

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cooldown:"

// Config holds configuration for the Redis cooldown repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed cooldown repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Acquire claims a key with SET NX
func (r *redisRepository) Acquire(ctx context.Context, input *AcquireInput) (*AcquireOutput, error) {
	if input == nil || input.Key == "" || input.TTL <= 0 {
		return nil, errors.New("input needs a key and a positive TTL")
	}

	key := keyPrefix + input.Key

	ok, err := r.client.SetNX(ctx, key, 1, input.TTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire cooldown: %w", err)
	}
	if ok {
		return &AcquireOutput{Acquired: true}, nil
	}

	remaining, err := r.client.PTTL(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cooldown: %w", err)
	}
	if remaining < 0 {
		remaining = 0
	}

	return &AcquireOutput{
		Acquired:  false,
		Remaining: remaining,
	}, nil
}

// Release deletes a claim
func (r *redisRepository) Release(ctx context.Context, input *ReleaseInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	if err := r.client.Del(ctx, keyPrefix+input.Key).Err(); err != nil {
		return fmt.Errorf("failed to release cooldown: %w", err)
	}
	return nil
}
