// Package cache provides AccountCache implementations.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix        = "accounts:public:"
	generationPrefix = "accounts:generation:"
	defaultTTL       = 5 * time.Minute
	generationTTL    = 24 * time.Hour
	defaultPingWait  = 5 * time.Second
)

// redisAccountCache stores public account views as JSON strings next to a
// per-account generation counter that Delete increments.
type redisAccountCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingWait)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "redis ping")
	}

	return client, nil
}

// NewRedisAccountCache wraps an existing client. A non-positive ttl uses the default.
func NewRedisAccountCache(client *redis.Client, ttl time.Duration) service.AccountCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisAccountCache{client: client, ttl: ttl}
}

func cacheKey(id string) string {
	return keyPrefix + id
}

func generationKey(id string) string {
	return generationPrefix + id
}

func parseGeneration(value any) (uint64, error) {
	raw, ok := value.(string)
	if !ok {
		return 0, nil
	}

	generation, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "decode cache generation")
	}

	return generation, nil
}

// Get reads the view and the generation in one round trip. On a miss the
// generation is still returned so the caller can hand it to Set.
func (c *redisAccountCache) Get(ctx context.Context, id string) (*entity.PublicAccount, uint64, error) {
	values, err := c.client.MGet(ctx, cacheKey(id), generationKey(id)).Result()
	if err != nil {
		return nil, 0, errors.Wrap(err, "redis mget")
	}

	generation, err := parseGeneration(values[1])
	if err != nil {
		return nil, 0, err
	}

	raw, ok := values[0].(string)
	if !ok {
		return nil, generation, service.ErrCacheMiss
	}

	var account entity.PublicAccount
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return nil, generation, errors.Wrap(err, "decode cached account")
	}

	return &account, generation, nil
}

// Set writes the view only while the generation is unchanged. The generation
// key is watched, so a Delete racing with this call aborts the write.
func (c *redisAccountCache) Set(ctx context.Context, account *entity.PublicAccount, generation uint64) error {
	raw, err := json.Marshal(account)
	if err != nil {
		return errors.WithStack(err)
	}

	genKey := generationKey(account.ID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Uint64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return errors.Wrap(err, "redis get generation")
		}
		if current != generation {
			return service.ErrCacheStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, cacheKey(account.ID), raw, c.ttl)

			return nil
		})

		return err
	}, genKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return service.ErrCacheStale
	case errors.Is(err, service.ErrCacheStale):
		return err
	default:
		return errors.Wrap(err, "redis set")
	}
}

// Delete bumps the generation and drops the cached view atomically.
func (c *redisAccountCache) Delete(ctx context.Context, id string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(id))
		pipe.Expire(ctx, generationKey(id), generationTTL)
		pipe.Del(ctx, cacheKey(id))

		return nil
	})

	return errors.Wrap(err, "redis invalidate")
}
