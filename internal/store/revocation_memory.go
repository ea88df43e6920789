package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-job-board/internal/logger"
)

type expiringCutoff struct {
	cutoff    time.Time
	expiresAt time.Time
}

// MemoryRevocationStore is a single-process [RevocationStore] used when no
// Redis is configured. Run sweeps expired entries.
type MemoryRevocationStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
	users  map[int64]expiringCutoff

	sweepInterval time.Duration
	now           func() time.Time
	logger        *logger.Logger
}

func NewMemoryRevocationStore(sweepInterval time.Duration, logger *logger.Logger) *MemoryRevocationStore {
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	return &MemoryRevocationStore{
		tokens:        make(map[string]time.Time),
		users:         make(map[int64]expiringCutoff),
		sweepInterval: sweepInterval,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *MemoryRevocationStore) RevokeToken(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	s.tokens[jti] = s.now().Add(ttl)
	s.mu.Unlock()
	return nil
}

func (s *MemoryRevocationStore) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.RLock()
	expiresAt, ok := s.tokens[jti]
	s.mu.RUnlock()
	return ok && s.now().Before(expiresAt), nil
}

func (s *MemoryRevocationStore) RevokeUser(_ context.Context, userID int64, cutoff time.Time, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	s.users[userID] = expiringCutoff{cutoff: cutoff.UTC(), expiresAt: s.now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryRevocationStore) UserRevokedAt(_ context.Context, userID int64) (time.Time, bool, error) {
	s.mu.RLock()
	entry, ok := s.users[userID]
	s.mu.RUnlock()
	if !ok || !s.now().Before(entry.expiresAt) {
		return time.Time{}, false, nil
	}
	return entry.cutoff, true, nil
}

// Sweep drops expired entries and returns how many were removed.
func (s *MemoryRevocationStore) Sweep() int {
	now := s.now()
	removed := 0

	s.mu.Lock()
	defer s.mu.Unlock()
	for jti, expiresAt := range s.tokens {
		if !now.Before(expiresAt) {
			delete(s.tokens, jti)
			removed++
		}
	}
	for userID, entry := range s.users {
		if !now.Before(entry.expiresAt) {
			delete(s.users, userID)
			removed++
		}
	}
	return removed
}

// Name implements the workers.Worker interface.
func (s *MemoryRevocationStore) Name() string {
	return "revocation-sweeper"
}

// Run sweeps on every tick until ctx is done.
func (s *MemoryRevocationStore) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("swept expired revocations")
			}
		}
	}
}
