package stores

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisPresenceRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPresenceRegistry(client *redis.Client, ttl time.Duration) *RedisPresenceRegistry {
	return &RedisPresenceRegistry{client: client, ttl: ttl}
}

func presenceKey(identityID string) string {
	return "presence:" + identityID
}

// Up records the connection under the identity's presence hash. The hash TTL
// is refreshed on every write, so an identity whose server died without
// cleanup goes offline after at most ttl.
func (r *RedisPresenceRegistry) Up(ctx context.Context, identityID, connID string) error {
	return r.touch(ctx, identityID, connID)
}

func (r *RedisPresenceRegistry) Heartbeat(ctx context.Context, identityID, connID string) error {
	return r.touch(ctx, identityID, connID)
}

func (r *RedisPresenceRegistry) touch(ctx context.Context, identityID, connID string) error {
	now := strconv.FormatInt(time.Now().Unix(), 10)
	return doRetry(ctx, "presence touch", func(ctx context.Context) error {
		pipe := r.client.TxPipeline()
		pipe.HSet(ctx, presenceKey(identityID), connID, now)
		pipe.Expire(ctx, presenceKey(identityID), r.ttl)
		_, err := pipe.Exec(ctx)
		return err
	})
}

func (r *RedisPresenceRegistry) Down(ctx context.Context, identityID, connID string) (bool, error) {
	var remaining int64
	err := doRetry(ctx, "presence down", func(ctx context.Context) error {
		pipe := r.client.TxPipeline()
		pipe.HDel(ctx, presenceKey(identityID), connID)
		count := pipe.HLen(ctx, presenceKey(identityID))
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
		remaining = count.Val()
		return nil
	})
	if err != nil {
		return false, err
	}
	return remaining == 0, nil
}

func (r *RedisPresenceRegistry) Online(ctx context.Context, identityID string) (bool, error) {
	var fields map[string]string
	err := doRetry(ctx, "presence online", func(ctx context.Context) error {
		v, err := r.client.HGetAll(ctx, presenceKey(identityID)).Result()
		if err != nil {
			return err
		}
		fields = v
		return nil
	})
	if err != nil {
		return false, err
	}

	// The hash TTL bounds staleness at the identity level; individual
	// heartbeat timestamps bound it per connection.
	cutoff := time.Now().Add(-r.ttl).Unix()
	for _, raw := range fields {
		ts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		if ts >= cutoff {
			return true, nil
		}
	}
	return false, nil
}
