package utils

import (
	"context"
	"time"

	"estatehub/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCachePrefix is the prefix used for revoked-token keys.
const AuthCachePrefix = "auth:revoked:"

// TokenStore remembers revoked tokens until they would have expired anyway.
type TokenStore interface {
	Revoke(ctx context.Context, token string, until time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// RedisTokenStore implements TokenStore on a dedicated Redis DB.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

// InitAuthCache connects to Redis; a nil store means revocation is disabled.
func InitAuthCache(cfg config.Config) *RedisTokenStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis unavailable, token revocation disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = client.Close()
		return nil
	}
	return NewRedisTokenStore(client)
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, AuthCachePrefix+HashToken(token), 1, ttl).Err()
}

func (s *RedisTokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, AuthCachePrefix+HashToken(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Client exposes the underlying connection for health checks.
func (s *RedisTokenStore) Client() *redis.Client { return s.client }
