package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-job-board/internal/adapter"
	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
)

const (
	pushRetryMin = time.Second
	pushRetryMax = 30 * time.Second
)

type clientSessionController struct {
	store   ClientSessionStore
	adapter adapter.ServerAdapter
	push    adapter.PushChannel

	verifyInterval time.Duration
	verifyTimeout  time.Duration
	pushRetry      time.Duration

	jobs clientSessionJobs

	// tokenChanged asks the push loop to reconnect with a refreshed token.
	tokenChanged chan struct{}
	forced       chan string

	mu   sync.Mutex
	base context.Context

	logger *logger.Logger
}

func NewClientSessionController(
	sessions ClientSessionStore,
	serverAdapter adapter.ServerAdapter,
	push adapter.PushChannel,
	cfg config.ClientWorkers,
	logger *logger.Logger,
) ClientSessionController {
	c := &clientSessionController{
		store:          sessions,
		adapter:        serverAdapter,
		push:           push,
		verifyInterval: cfg.VerifyInterval,
		verifyTimeout:  cfg.VerifyTimeout,
		pushRetry:      pushRetryMin,
		tokenChanged:   make(chan struct{}, 1),
		forced:         make(chan string, 1),
		base:           context.Background(),
		logger:         logger,
	}
	if c.verifyInterval <= 0 {
		c.verifyInterval = config.DefaultVerifyInterval
	}
	if c.verifyTimeout <= 0 {
		c.verifyTimeout = config.DefaultVerifyTimeout
	}
	return c
}

func (c *clientSessionController) Start(ctx context.Context) error {
	c.mu.Lock()
	c.base = ctx
	c.mu.Unlock()

	state, err := c.store.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !state.IsAuthenticated() {
		return nil
	}

	c.startSession(state.Generation)

	if err = c.verify(ctx, state.Generation); err != nil && !endsSession(err) {
		c.logger.Warn().Err(err).Msg("could not verify the restored session, keeping it")
	}
	return nil
}

// ── Credentials ──────────────────────────────────────────────────────────────

func (c *clientSessionController) Login(ctx context.Context, req models.LoginRequest) error {
	return c.signIn(ctx, "login", func(ctx context.Context) (models.AuthResponse, error) {
		return c.adapter.Login(ctx, req)
	})
}

func (c *clientSessionController) RegisterCandidate(ctx context.Context, req models.CandidateRegistrationRequest) error {
	return c.signIn(ctx, "register candidate", func(ctx context.Context) (models.AuthResponse, error) {
		return c.adapter.RegisterCandidate(ctx, req)
	})
}

func (c *clientSessionController) RegisterRecruiter(ctx context.Context, req models.RecruiterRegistrationRequest) error {
	return c.signIn(ctx, "register recruiter", func(ctx context.Context) (models.AuthResponse, error) {
		return c.adapter.RegisterRecruiter(ctx, req)
	})
}

func (c *clientSessionController) GoogleSignIn(ctx context.Context, req models.GoogleSignInRequest) error {
	return c.signIn(ctx, "google sign-in", func(ctx context.Context) (models.AuthResponse, error) {
		return c.adapter.GoogleSignIn(ctx, req)
	})
}

func (c *clientSessionController) GoogleSignInCandidate(ctx context.Context, req models.GoogleSignInRequest) error {
	return c.signIn(ctx, "candidate google sign-in", func(ctx context.Context) (models.AuthResponse, error) {
		return c.adapter.GoogleSignInCandidate(ctx, req)
	})
}

func (c *clientSessionController) signIn(ctx context.Context, op string, call func(ctx context.Context) (models.AuthResponse, error)) error {
	c.store.SetLoading(true)

	resp, err := call(ctx)
	if err != nil {
		err = mapAdapterError(err)
		c.store.SetError(adapter.Message(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	generation, err := c.store.SetCredentials(ctx, resp.User, resp.Token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.logger.Info().Str("op", op).Int64("user_id", resp.User.ID).Msg("signed in")
	c.startSession(generation)
	return nil
}

func (c *clientSessionController) CompleteCandidateProfile(ctx context.Context, req models.CandidateProfileRequest) error {
	return c.completeProfile(ctx, func(ctx context.Context) (models.UserView, error) {
		return c.adapter.CompleteCandidateProfile(ctx, req)
	})
}

func (c *clientSessionController) CompleteRecruiterProfile(ctx context.Context, req models.RecruiterProfileRequest) error {
	return c.completeProfile(ctx, func(ctx context.Context) (models.UserView, error) {
		return c.adapter.CompleteRecruiterProfile(ctx, req)
	})
}

func (c *clientSessionController) completeProfile(ctx context.Context, call func(ctx context.Context) (models.UserView, error)) error {
	state := c.store.State()
	if !state.IsAuthenticated() {
		return ErrNoToken
	}

	c.store.SetLoading(true)
	err := c.withRefresh(ctx, state.Generation, func(ctx context.Context) error {
		user, err := call(ctx)
		if err != nil {
			return err
		}
		if ok, err := c.store.UpdateUser(ctx, state.Generation, user); err != nil || !ok {
			return errors.Join(ErrStaleSession, err)
		}
		return nil
	})
	if err != nil {
		c.store.SetError(adapter.Message(err))
		return fmt.Errorf("complete profile: %w", err)
	}
	return nil
}

// ── Verification ─────────────────────────────────────────────────────────────

func (c *clientSessionController) Verify(ctx context.Context) error {
	state := c.store.State()
	if !state.IsAuthenticated() {
		return ErrNoToken
	}
	return c.verify(ctx, state.Generation)
}

func (c *clientSessionController) verify(ctx context.Context, generation uint64) error {
	return c.withRefresh(ctx, generation, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, c.verifyTimeout)
		defer cancel()

		user, err := c.adapter.VerifyToken(ctx)
		if err != nil {
			return err
		}
		// a stale answer is dropped silently
		_, err = c.store.UpdateUser(ctx, generation, user)
		return err
	})
}

func (c *clientSessionController) verifyLoop(ctx context.Context, generation uint64) {
	ticker := time.NewTicker(c.verifyInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.verify(ctx, generation); err != nil && !endsSession(err) && ctx.Err() == nil {
				c.logger.Warn().Err(err).Msg("session verification failed")
			}
		}
	}
}

// withRefresh runs call and, when the token is rejected, refreshes it once
// and retries once. A rejection that survives the retry ends the session.
func (c *clientSessionController) withRefresh(ctx context.Context, generation uint64, call func(ctx context.Context) error) error {
	err := mapAdapterError(call(ctx))
	if errors.Is(err, ErrUnauthenticated) {
		if refreshErr := c.refresh(ctx, generation); refreshErr == nil {
			err = mapAdapterError(call(ctx))
		} else {
			c.logger.Debug().Err(refreshErr).Msg("token refresh failed")
		}
	}

	if endsSession(err) {
		c.forceLogout(generation, adapter.Message(err))
	}
	return err
}

func (c *clientSessionController) refresh(ctx context.Context, generation uint64) error {
	state := c.store.State()
	if state.Generation != generation || !state.IsAuthenticated() {
		return ErrStaleSession
	}

	ctx, cancel := context.WithTimeout(ctx, c.verifyTimeout)
	defer cancel()

	resp, err := c.adapter.Refresh(ctx, state.Token)
	if err != nil {
		return mapAdapterError(err)
	}

	ok, err := c.store.ReplaceToken(ctx, generation, resp.Token, resp.User)
	if err != nil {
		return err
	}
	if !ok {
		return ErrStaleSession
	}

	select {
	case c.tokenChanged <- struct{}{}:
	default:
	}
	c.logger.Debug().Int64("user_id", resp.User.ID).Msg("token refreshed")
	return nil
}

// ── Push channel ─────────────────────────────────────────────────────────────

// pushLoop keeps the push channel open for the session, reconnecting with
// backoff until the session ends.
func (c *clientSessionController) pushLoop(ctx context.Context, generation uint64) {
	backoff := c.pushRetry

	for ctx.Err() == nil {
		state := c.store.State()
		if state.Generation != generation || !state.IsAuthenticated() {
			return
		}

		stream, err := c.push.Connect(ctx, state.Token)
		if err != nil {
			err = mapAdapterError(err)
			if endsSession(err) {
				// let verification decide between refresh and logout
				_ = c.verify(ctx, generation)
			} else if ctx.Err() == nil {
				c.logger.Debug().Err(err).Dur("retry_in", backoff).Msg("push channel unavailable")
			}

			select {
			case <-ctx.Done():
				return
			case <-c.tokenChanged:
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, pushRetryMax)
			continue
		}

		backoff = c.pushRetry
		ended := c.consume(ctx, generation, stream)
		_ = stream.Close()
		c.store.SetConnected(generation, false)
		if ended {
			return
		}
	}
}

// consume handles the events of one connection. It reports true when the
// session is over.
func (c *clientSessionController) consume(ctx context.Context, generation uint64, stream adapter.PushStream) bool {
	for {
		select {
		case <-ctx.Done():
			return true

		case <-c.tokenChanged:
			return false

		case event, ok := <-stream.Events():
			if !ok {
				return false
			}
			switch {
			case event.Event == models.EventConnected:
				c.store.SetConnected(generation, true)
			case event.IsInvalidation():
				c.logger.Info().Str("event", event.Event).Str("reason", event.Data.Reason).Msg("session invalidated by server")
				c.forceLogout(generation, event.Data.Reason)
				return true
			}
		}
	}
}

// ── Teardown ─────────────────────────────────────────────────────────────────

func (c *clientSessionController) startSession(generation uint64) {
	c.jobs.Start(c.baseContext(),
		func(ctx context.Context) { c.verifyLoop(ctx, generation) },
		func(ctx context.Context) { c.pushLoop(ctx, generation) },
	)
}

// forceLogout ends the session of generation, if it is still current, and
// signals the UI. It runs on background goroutines and never waits for them.
func (c *clientSessionController) forceLogout(generation uint64, reason string) {
	reason = forcedReason(reason)

	ok, err := c.store.ForceLogoutIfCurrent(c.baseContext(), generation, reason)
	if err != nil {
		c.logger.Err(err).Msg("error clearing the session on forced logout")
	}
	if !ok {
		return
	}

	c.jobs.Cancel()

	// the newest reason replaces an unread one; the send never blocks
	for {
		select {
		case c.forced <- reason:
			return
		default:
		}
		select {
		case <-c.forced:
		default:
		}
	}
}

func (c *clientSessionController) Logout(ctx context.Context) error {
	state := c.store.State()

	// the push channel goes first so the server's auth:logout for this
	// token is never taken for a forced logout
	c.jobs.Stop()

	if state.IsAuthenticated() {
		logoutCtx, cancel := context.WithTimeout(ctx, c.verifyTimeout)
		if err := c.adapter.Logout(logoutCtx); err != nil {
			c.logger.Warn().Err(err).Msg("server logout failed, clearing the local session anyway")
		}
		cancel()
	}

	return c.store.Logout(ctx)
}

func (c *clientSessionController) ForcedLogouts() <-chan string {
	return c.forced
}

func (c *clientSessionController) ServerVersion(ctx context.Context) (models.VersionResponse, error) {
	version, err := c.adapter.Version(ctx)
	if err != nil {
		return models.VersionResponse{}, mapAdapterError(err)
	}
	return version, nil
}

func (c *clientSessionController) Close() {
	c.jobs.Stop()
}

func (c *clientSessionController) baseContext() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.base
}
