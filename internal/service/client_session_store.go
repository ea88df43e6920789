// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/models"
)

// TokenHolder receives the session token; the server adapter implements it.
type TokenHolder interface {
	SetToken(token string)
}

type clientSessionStore struct {
	mu    sync.Mutex
	state models.ClientSessionState

	repo   store.LocalSessionRepository
	tokens TokenHolder

	subs    map[int]chan models.ClientSessionState
	nextSub int

	logger *logger.Logger
}

func NewClientSessionStore(repo store.LocalSessionRepository, tokens TokenHolder, logger *logger.Logger) ClientSessionStore {
	return &clientSessionStore{
		repo:   repo,
		tokens: tokens,
		subs:   make(map[int]chan models.ClientSessionState),
		logger: logger,
	}
}

func (s *clientSessionStore) State() models.ClientSessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *clientSessionStore) Restore(ctx context.Context) (models.ClientSessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.Load(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return s.snapshot(), nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSessionStore.Restore").Msg("error loading local session")
		return s.snapshot(), fmt.Errorf("load local session: %w", err)
	}

	s.authenticate(session.Token, *session.User)
	s.logger.Debug().Int64("user_id", session.User.ID).Msg("session restored")
	return s.publish(), nil
}

// SetCredentials persists first: a session that could not be stored is not
// made current.
func (s *clientSessionStore) SetCredentials(ctx context.Context, user models.UserView, token string) (uint64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, ErrNoToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, models.LocalSession{Token: token, User: &user}); err != nil {
		s.logger.Err(err).Str("func", "*clientSessionStore.SetCredentials").Msg("error saving local session")
		s.state.Loading = false
		s.state.Error = "could not save the session"
		s.publish()
		return 0, fmt.Errorf("save local session: %w", err)
	}

	s.authenticate(token, user)
	return s.publish().Generation, nil
}

func (s *clientSessionStore) ReplaceToken(ctx context.Context, generation uint64, token string, user models.UserView) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current(generation) {
		return false, nil
	}

	if err := s.repo.Save(ctx, models.LocalSession{Token: token, User: &user}); err != nil {
		s.logger.Err(err).Str("func", "*clientSessionStore.ReplaceToken").Msg("error saving refreshed session")
		return false, fmt.Errorf("save local session: %w", err)
	}

	s.state.Token = token
	s.state.User = &user
	s.tokens.SetToken(token)
	s.publish()
	return true, nil
}

func (s *clientSessionStore) UpdateUser(ctx context.Context, generation uint64, user models.UserView) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current(generation) {
		return false, nil
	}

	if err := s.repo.Save(ctx, models.LocalSession{Token: s.state.Token, User: &user}); err != nil {
		s.logger.Err(err).Str("func", "*clientSessionStore.UpdateUser").Msg("error saving user")
		return false, fmt.Errorf("save local session: %w", err)
	}

	s.state.User = &user
	s.state.Loading = false
	s.publish()
	return true, nil
}

func (s *clientSessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clear(ctx, "")
}

func (s *clientSessionStore) ForceLogout(ctx context.Context, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clear(ctx, forcedReason(reason))
}

func (s *clientSessionStore) ForceLogoutIfCurrent(ctx context.Context, generation uint64, reason string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current(generation) {
		return false, nil
	}
	return true, s.clear(ctx, forcedReason(reason))
}

func (s *clientSessionStore) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Loading = loading
	if loading {
		s.state.Error = ""
	}
	s.publish()
}

func (s *clientSessionStore) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Loading = false
	s.state.Error = message
	s.publish()
}

func (s *clientSessionStore) SetConnected(generation uint64, connected bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current(generation) {
		return false
	}
	if s.state.Connected != connected {
		s.state.Connected = connected
		s.publish()
	}
	return true
}

func (s *clientSessionStore) Subscribe() (<-chan models.ClientSessionState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++

	ch := make(chan models.ClientSessionState, 1)
	ch <- s.snapshot()
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// ── helpers (s.mu held) ─────────────────────────────────────────────────────

func (s *clientSessionStore) authenticate(token string, user models.UserView) {
	s.state = models.ClientSessionState{
		User:       &user,
		Token:      token,
		Generation: s.state.Generation + 1,
	}
	s.tokens.SetToken(token)
}

// clear ends the session. Storage is cleared even when the in-memory
// session is already empty; the generation only moves when a session ends.
func (s *clientSessionStore) clear(ctx context.Context, reason string) error {
	wasAuthenticated := s.state.IsAuthenticated()

	s.tokens.SetToken("")
	err := s.repo.Clear(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSessionStore.clear").Msg("error clearing local session")
		err = fmt.Errorf("clear local session: %w", err)
	}

	generation := s.state.Generation
	if wasAuthenticated {
		generation++
	}
	if !wasAuthenticated && reason == "" && s.state.Error == "" && !s.state.Loading {
		return err
	}

	s.state = models.ClientSessionState{Error: reason, Generation: generation}
	s.publish()
	return err
}

func (s *clientSessionStore) current(generation uint64) bool {
	return s.state.Generation == generation && s.state.IsAuthenticated()
}

func (s *clientSessionStore) snapshot() models.ClientSessionState {
	state := s.state
	if state.User != nil {
		user := *state.User
		state.User = &user
	}
	return state
}

// publish hands the latest snapshot to every subscriber, replacing a value
// the subscriber has not read yet.
func (s *clientSessionStore) publish() models.ClientSessionState {
	state := s.snapshot()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
	return state
}

func forcedReason(reason string) string {
	if reason = strings.TrimSpace(reason); reason == "" {
		return models.DefaultForcedLogoutReason
	}
	return reason
}
