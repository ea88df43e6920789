package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups the server-side repositories and the revocation store.
type Storages struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
	RevocationStore   RevocationStore

	// MemoryRevocation is set when no Redis is configured; its sweeper must
	// be run as a worker.
	MemoryRevocation *MemoryRevocationStore

	db    *DB
	redis *redis.Client
}

// NewStorages connects to Postgres, migrates it and selects the revocation
// store: Redis when an address is configured, in-memory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, workers config.Workers, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
		db:                db,
	}

	if cfg.Redis.Address == "" {
		log.Warn().Msg("no redis configured, token revocation is process-local")
		storages.MemoryRevocation = NewMemoryRevocationStore(workers.RevocationSweepInterval, log)
		storages.RevocationStore = storages.MemoryRevocation
		return storages, nil
	}

	client, err := NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("redis connection error: %w", err)
	}
	storages.redis = client
	storages.RevocationStore = NewRedisRevocationStore(client, log)

	return storages, nil
}

// Ping checks the database (and Redis, when used) for health checks.
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

func (s *Storages) Close() error {
	var redisErr error
	if s.redis != nil {
		redisErr = s.redis.Close()
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	return redisErr
}
