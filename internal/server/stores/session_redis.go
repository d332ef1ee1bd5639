package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vaultchat/vaultchat/internal/common"
)

const sessionTokenBytes = 32

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(token string) string {
	return "session:" + token
}

func identitySessionsKey(identityID string) string {
	return "identity_sessions:" + identityID
}

func (s *RedisSessionStore) Create(ctx context.Context, session *Session) (string, error) {
	token, err := common.MakeRandHexString(sessionTokenBytes)
	if err != nil {
		return "", err
	}
	session.Token = token
	session.CreatedAt = time.Now().UTC()

	payload, err := json.Marshal(session)
	if err != nil {
		return "", err
	}

	err = doRetry(ctx, "session create", func(ctx context.Context) error {
		pipe := s.client.TxPipeline()
		pipe.Set(ctx, sessionKey(token), payload, s.ttl)
		pipe.SAdd(ctx, identitySessionsKey(session.IdentityID), token)
		// The index outlives individual sessions by one TTL; stale members
		// are pruned in DeleteOthers.
		pipe.Expire(ctx, identitySessionsKey(session.IdentityID), s.ttl)
		_, err := pipe.Exec(ctx)
		return err
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (*Session, error) {
	var payload string
	err := doRetry(ctx, "session get", func(ctx context.Context) error {
		v, err := s.client.Get(ctx, sessionKey(token)).Result()
		if err != nil {
			return err
		}
		payload = v
		return nil
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrUnauthorized
		}
		return nil, err
	}

	session := &Session{}
	if err := json.Unmarshal([]byte(payload), session); err != nil {
		return nil, fmt.Errorf("corrupt session record: %w", err)
	}
	return session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	session, err := s.Get(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return nil
		}
		return err
	}

	return doRetry(ctx, "session delete", func(ctx context.Context) error {
		pipe := s.client.TxPipeline()
		pipe.Del(ctx, sessionKey(token))
		pipe.SRem(ctx, identitySessionsKey(session.IdentityID), token)
		_, err := pipe.Exec(ctx)
		return err
	})
}

func (s *RedisSessionStore) DeleteOthers(ctx context.Context, identityID, keepToken string) (int, error) {
	var tokens []string
	err := doRetry(ctx, "session list", func(ctx context.Context) error {
		v, err := s.client.SMembers(ctx, identitySessionsKey(identityID)).Result()
		if err != nil {
			return err
		}
		tokens = v
		return nil
	})
	if err != nil {
		return 0, err
	}

	revoked := 0
	for _, token := range tokens {
		if token == keepToken {
			continue
		}
		var removed int64
		err := doRetry(ctx, "session revoke", func(ctx context.Context) error {
			pipe := s.client.TxPipeline()
			del := pipe.Del(ctx, sessionKey(token))
			pipe.SRem(ctx, identitySessionsKey(identityID), token)
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
			removed = del.Val()
			return nil
		})
		if err != nil {
			return revoked, err
		}
		// Stale index members whose session already expired do not count.
		if removed > 0 {
			revoked++
		}
	}

	return revoked, nil
}
