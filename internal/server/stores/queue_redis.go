package stores

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vaultchat/vaultchat/internal/common"
)

type RedisOfflineQueue struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisOfflineQueue(client *redis.Client, ttl time.Duration) *RedisOfflineQueue {
	return &RedisOfflineQueue{client: client, ttl: ttl}
}

func queueKey(identityID string) string {
	return "queue:" + identityID
}

func (q *RedisOfflineQueue) Enqueue(ctx context.Context, identityID string, frame []byte) error {
	return doRetry(ctx, "queue enqueue", func(ctx context.Context) error {
		pipe := q.client.TxPipeline()
		pipe.RPush(ctx, queueKey(identityID), frame)
		pipe.Expire(ctx, queueKey(identityID), q.ttl)
		_, err := pipe.Exec(ctx)
		return err
	})
}

func (q *RedisOfflineQueue) Peek(ctx context.Context, identityID string) ([]byte, error) {
	var frame []byte
	err := doRetry(ctx, "queue peek", func(ctx context.Context) error {
		v, err := q.client.LIndex(ctx, queueKey(identityID), 0).Bytes()
		if err != nil {
			return err
		}
		frame = v
		return nil
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return frame, nil
}

func (q *RedisOfflineQueue) Pop(ctx context.Context, identityID string) error {
	err := doRetry(ctx, "queue pop", func(ctx context.Context) error {
		return q.client.LPop(ctx, queueKey(identityID)).Err()
	})
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

func (q *RedisOfflineQueue) Len(ctx context.Context, identityID string) (int64, error) {
	var n int64
	err := doRetry(ctx, "queue len", func(ctx context.Context) error {
		v, err := q.client.LLen(ctx, queueKey(identityID)).Result()
		if err != nil {
			return err
		}
		n = v
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
