package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	revokedTokenKeyPrefix = "auth:revoked:jti:"
	revokedUserKeyPrefix  = "auth:revoked:user:"
)

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

type redisRevocationStore struct {
	client redis.UniversalClient
	logger *logger.Logger
}

// NewRedisRevocationStore returns a [RevocationStore] shared by every server
// instance using the same Redis.
func NewRedisRevocationStore(client redis.UniversalClient, logger *logger.Logger) RevocationStore {
	logger.Debug().Msg("creating redis revocation store")
	return &redisRevocationStore{client: client, logger: logger}
}

func (s *redisRevocationStore) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// already expired, the codec rejects it anyway
		return nil
	}
	if err := s.client.Set(ctx, revokedTokenKeyPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *redisRevocationStore) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedTokenKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}

func (s *redisRevocationStore) RevokeUser(ctx context.Context, userID int64, cutoff time.Time, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := revokedUserKeyPrefix + strconv.FormatInt(userID, 10)
	if err := s.client.Set(ctx, key, cutoff.UnixNano(), ttl).Err(); err != nil {
		return fmt.Errorf("revoke user sessions: %w", err)
	}
	return nil
}

func (s *redisRevocationStore) UserRevokedAt(ctx context.Context, userID int64) (time.Time, bool, error) {
	nanos, err := s.client.Get(ctx, revokedUserKeyPrefix+strconv.FormatInt(userID, 10)).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		return time.Time{}, false, nil
	case err != nil:
		return time.Time{}, false, fmt.Errorf("check revoked user: %w", err)
	}
	return time.Unix(0, nanos).UTC(), true, nil
}
