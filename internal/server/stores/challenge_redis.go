package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vaultchat/vaultchat/internal/common"
)

type RedisChallengeStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisChallengeStore(client *redis.Client, ttl time.Duration) *RedisChallengeStore {
	return &RedisChallengeStore{client: client, ttl: ttl}
}

func challengeKey(orgID, phone string) string {
	return fmt.Sprintf("challenge:%s:%s", orgID, phone)
}

func (s *RedisChallengeStore) Set(ctx context.Context, orgID, phone, code string) error {
	return doRetry(ctx, "challenge set", func(ctx context.Context) error {
		return s.client.Set(ctx, challengeKey(orgID, phone), code, s.ttl).Err()
	})
}

// Take uses GETDEL so that a code can be consumed exactly once even with
// concurrent attempts.
func (s *RedisChallengeStore) Take(ctx context.Context, orgID, phone string) (string, error) {
	var code string
	err := doRetry(ctx, "challenge take", func(ctx context.Context) error {
		v, err := s.client.GetDel(ctx, challengeKey(orgID, phone)).Result()
		if err != nil {
			return err
		}
		code = v
		return nil
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrInvalidOrExpiredCode
		}
		return "", err
	}
	return code, nil
}
