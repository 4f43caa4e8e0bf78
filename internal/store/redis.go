package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func init() {
	Register("redis", newRedisStore)
}

// redisStore implements the Store interface on top of Redis/Valkey.
//
// The mapping is direct: Set/Get/Exists use the string commands, Incr uses
// INCR (atomic server-side), RPush/LRange use the list commands, and
// FlushAll uses FLUSHDB so only the configured database is wiped.
// Counters are plain string keys holding a base-10 integer, which is what
// INCR leaves behind; Counter reads them back with GET and parses.
type redisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

func newRedisStore(cfg ProviderConfig) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Verify connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	cfg.Logger.Debug().Str("address", cfg.RedisAddress).Int("db", cfg.RedisDB).
		Msg("Connected to redis store")

	return &redisStore{client: client, logger: cfg.Logger}, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil means the key doesn't exist — a normal miss.
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

func (r *redisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *redisStore) Incr(ctx context.Context, name string) (int64, error) {
	return r.client.Incr(ctx, name).Result()
}

func (r *redisStore) Counter(ctx context.Context, name string) (int64, error) {
	val, err := r.client.Get(ctx, name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("counter %q holds non-integer value %q: %w", name, val, err)
	}
	return n, nil
}

func (r *redisStore) RPush(ctx context.Context, list string, value string) error {
	return r.client.RPush(ctx, list, value).Err()
}

func (r *redisStore) LRange(ctx context.Context, list string, start, stop int64) ([]string, error) {
	return r.client.LRange(ctx, list, start, stop).Result()
}

func (r *redisStore) FlushAll(ctx context.Context) error {
	return r.client.FlushDB(ctx).Err()
}

func (r *redisStore) Close() error {
	r.logger.Debug().Msg("Closing redis store")
	return r.client.Close()
}
