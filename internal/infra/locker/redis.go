package locker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultRedisTTL       = 10 * time.Second
	DefaultRetryInterval  = 25 * time.Millisecond
	defaultRedisKeyPrefix = "booking-lock"
)

// releaseScript deletes the key only if it still holds our token, so an
// expired lock re-acquired by someone else is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a lock shared by every instance talking to the same Redis.
// The TTL bounds how long a crashed holder can block a key.
type Redis struct {
	rdb           *redis.Client
	ttl           time.Duration
	retryInterval time.Duration
	prefix        string
}

func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultRedisTTL
	}
	return &Redis{
		rdb:           rdb,
		ttl:           ttl,
		retryInterval: DefaultRetryInterval,
		prefix:        defaultRedisKeyPrefix,
	}
}

func (r *Redis) Lock(ctx context.Context, key string) (Unlock, error) {
	fullKey := r.prefix + ":" + key
	token := uuid.NewString()

	ticker := time.NewTicker(r.retryInterval)
	defer ticker.Stop()

	for {
		ok, err := r.rdb.SetNX(ctx, fullKey, token, r.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrLockWait, key, ctx.Err())
			}
			return nil, fmt.Errorf("%w: SETNX %s: %v", ErrBackend, fullKey, err)
		}
		if ok {
			return r.unlockFunc(fullKey, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %v", ErrLockWait, key, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (r *Redis) unlockFunc(fullKey, token string) Unlock {
	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = releaseScript.Run(ctx, r.rdb, []string{fullKey}, token).Err()
		})
	}
}
