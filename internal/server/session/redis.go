package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/passvault/internal/common"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in redis with a native TTL, for deployments that
// run more than one server instance. Redis cannot tell an expired token from
// one that never existed, so Get only ever reports common.ErrorNoSession.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Save(ctx context.Context, token string, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, redisKeyPrefix+token, userID, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, redisKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrorNoSession
		}
		return "", err
	}
	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisKeyPrefix+token).Err()
}
