package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/utils"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.ServerURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]: POST /user/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "login", "/user/login", req)
}

// RegisterCandidate implements [ServerAdapter]: POST /candidate/register.
func (h *httpServerAdapter) RegisterCandidate(ctx context.Context, req models.CandidateRegistrationRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "register candidate", "/candidate/register", req)
}

// RegisterRecruiter implements [ServerAdapter]: POST /recruiter/register.
func (h *httpServerAdapter) RegisterRecruiter(ctx context.Context, req models.RecruiterRegistrationRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "register recruiter", "/recruiter/register", req)
}

// GoogleSignIn implements [ServerAdapter]: POST /user/auth/google-signin.
func (h *httpServerAdapter) GoogleSignIn(ctx context.Context, req models.GoogleSignInRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "google sign-in", "/user/auth/google-signin", req)
}

// GoogleSignInCandidate implements [ServerAdapter]: POST /candidate/auth/google-signin.
func (h *httpServerAdapter) GoogleSignInCandidate(ctx context.Context, req models.GoogleSignInRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "candidate google sign-in", "/candidate/auth/google-signin", req)
}

// Refresh implements [ServerAdapter]: POST /auth/refresh. The token travels
// in the body, so an expired token can still be exchanged.
func (h *httpServerAdapter) Refresh(ctx context.Context, token string) (models.AuthResponse, error) {
	return h.authenticate(ctx, "refresh", "/auth/refresh", models.RefreshRequest{Token: token})
}

// CompleteCandidateProfile implements [ServerAdapter]: POST /candidate/register/step2.
func (h *httpServerAdapter) CompleteCandidateProfile(ctx context.Context, req models.CandidateProfileRequest) (models.UserView, error) {
	return h.completeProfile(ctx, "complete candidate profile", "/candidate/register/step2", req)
}

// CompleteRecruiterProfile implements [ServerAdapter]: POST /recruiter/register/step2.
func (h *httpServerAdapter) CompleteRecruiterProfile(ctx context.Context, req models.RecruiterProfileRequest) (models.UserView, error) {
	return h.completeProfile(ctx, "complete recruiter profile", "/recruiter/register/step2", req)
}

// VerifyToken implements [ServerAdapter]: GET /user/verify-token. A 2xx
// answer with valid=false is treated as an invalid token.
func (h *httpServerAdapter) VerifyToken(ctx context.Context) (models.UserView, error) {
	var result models.VerifyTokenResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/user/verify-token")
	if err != nil {
		return models.UserView{}, fmt.Errorf("%w: verify token request: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}
	if !result.Valid || result.User == nil {
		return models.UserView{}, newStatusError(http.StatusUnauthorized, []byte(`{"error":"token is invalid"}`))
	}

	return *result.User, nil
}

// Logout implements [ServerAdapter]: POST /auth/logout.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("%w: logout request: %w", ErrUnreachable, err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter]: GET /version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("%w: version request: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpServerAdapter) authenticate(ctx context.Context, op, path string, body any) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %s request: %w", ErrUnreachable, op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "*httpServerAdapter.authenticate").Str("op", op).
			Int("status", resp.StatusCode()).Msg("server rejected credentials")
		return models.AuthResponse{}, err
	}
	if result.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: %w", op, ErrEmptyToken)
	}

	return result, nil
}

func (h *httpServerAdapter) completeProfile(ctx context.Context, op, path string, body any) (models.UserView, error) {
	var result models.ProfileResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.UserView{}, fmt.Errorf("%w: %s request: %w", ErrUnreachable, op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	return result.User, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
