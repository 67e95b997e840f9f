package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Forkful/api/config"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

var ErrNotInitialized = errors.New("redis client not initialized")

// InitFromConfig connects using REDIS_URL when set (redis:// or rediss://),
// otherwise the plain address and credentials.
func InitFromConfig(cfg config.Redis) error {
	if cfg.URL != "" {
		opt, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		Client = redis.NewClient(opt)
	} else {
		addr := cfg.Addr
		if addr == "" {
			addr = "localhost:6379"
		}
		Client = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.Password,
			Username: cfg.Username,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		Client = nil
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	return nil
}

// Get returns "" with a nil error on a miss.
func Get(ctx context.Context, key string) (string, error) {
	if Client == nil {
		return "", ErrNotInitialized
	}

	val, err := Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if Client == nil {
		return ErrNotInitialized
	}
	return Client.Set(ctx, key, value, ttl).Err()
}

func Delete(ctx context.Context, keys ...string) error {
	if Client == nil || len(keys) == 0 {
		return nil
	}
	return Client.Del(ctx, keys...).Err()
}

func DeleteByPrefix(ctx context.Context, prefix string) error {
	if Client == nil {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := Client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if err := Delete(ctx, keys...); err != nil {
			return err
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return nil
}
