// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/metrics"
	"github.com/MKhiriev/go-job-board/internal/utils"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
)

const googleBreakerName = "google-identity"

// BreakerSettings tunes the circuit breaker in front of Google.
type BreakerSettings struct {
	// MinRequests is the number of requests in a window before the failure
	// ratio is evaluated.
	MinRequests  uint32
	FailureRatio float64
	// OpenTimeout is how long the breaker stays open before probing.
	OpenTimeout time.Duration
	Interval    time.Duration
}

// DefaultBreakerSettings returns the production breaker settings.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MinRequests:  5,
		FailureRatio: 0.5,
		OpenTimeout:  30 * time.Second,
		Interval:     60 * time.Second,
	}
}

// GoogleProvider introspects Google OAuth access tokens through the
// tokeninfo and userinfo endpoints.
type GoogleProvider struct {
	client       *resty.Client
	breaker      *gobreaker.CircuitBreaker[models.ExternalIdentity]
	tokenInfoURL string
	userInfoURL  string
	logger       *logger.Logger
}

// NewGoogleProvider builds a [GoogleProvider]. Only [ErrUnavailable]
// failures count against the breaker: a flood of bad tokens must not cut
// off valid sign-ins.
func NewGoogleProvider(cfg config.Google, breaker BreakerSettings, log *logger.Logger) *GoogleProvider {
	p := &GoogleProvider{
		client:       utils.NewHTTPClient("", cfg.Timeout).Client,
		tokenInfoURL: cfg.TokenInfoURL,
		userInfoURL:  cfg.UserInfoURL,
		logger:       log,
	}

	p.breaker = gobreaker.NewCircuitBreaker[models.ExternalIdentity](gobreaker.Settings{
		Name:        googleBreakerName,
		MaxRequests: 1,
		Interval:    breaker.Interval,
		Timeout:     breaker.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < breaker.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= breaker.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, ErrUnavailable)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(metrics.BreakerStateValue(to))
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(googleBreakerName).Set(0)

	return p
}

// Introspect validates accessToken with Google and returns its identity.
func (p *GoogleProvider) Introspect(ctx context.Context, accessToken string) (models.ExternalIdentity, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return models.ExternalIdentity{}, fmt.Errorf("%w: empty token", ErrRejectedToken)
	}

	identity, err := p.breaker.Execute(func() (models.ExternalIdentity, error) {
		return p.introspect(ctx, accessToken)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return models.ExternalIdentity{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*GoogleProvider.Introspect").Msg("google introspection failed")
		return models.ExternalIdentity{}, err
	}
	return identity, nil
}

// State reports the breaker state.
func (p *GoogleProvider) State() gobreaker.State {
	return p.breaker.State()
}

func (p *GoogleProvider) introspect(ctx context.Context, accessToken string) (models.ExternalIdentity, error) {
	var info tokenInfoResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("access_token", accessToken).
		SetResult(&info).
		Get(p.tokenInfoURL)
	if err = checkResponse("tokeninfo", resp, err); err != nil {
		return models.ExternalIdentity{}, err
	}

	var user userInfoResponse
	resp, err = p.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&user).
		Get(p.userInfoURL)
	if err = checkResponse("userinfo", resp, err); err != nil {
		return models.ExternalIdentity{}, err
	}

	if info.Subject == "" || info.Subject != user.Subject {
		return models.ExternalIdentity{}, ErrSubjectMismatch
	}

	identity := models.ExternalIdentity{
		Provider:        models.ProviderGoogle,
		Subject:         info.Subject,
		Email:           models.NormalizeEmail(info.Email),
		EmailVerified:   bool(info.EmailVerified),
		GivenName:       strings.TrimSpace(user.GivenName),
		FamilyName:      strings.TrimSpace(user.FamilyName),
		Audience:        info.Audience,
		AuthorizedParty: info.AuthorizedParty,
	}
	// tokeninfo omits email without the email scope; userinfo may still carry it
	if identity.Email == "" {
		identity.Email = models.NormalizeEmail(user.Email)
		identity.EmailVerified = bool(user.EmailVerified)
	}
	if info.Expiry > 0 {
		identity.ExpiresAt = time.Unix(int64(info.Expiry), 0).UTC()
	}

	return identity, nil
}

func checkResponse(endpoint string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, endpoint, err)
	}
	switch code := resp.StatusCode(); {
	case code == http.StatusOK:
		return nil
	case code >= 400 && code < 500:
		return fmt.Errorf("%w: %s answered %d", ErrRejectedToken, endpoint, code)
	default:
		return fmt.Errorf("%w: %s answered %d", ErrUnavailable, endpoint, code)
	}
}

type tokenInfoResponse struct {
	Audience        string   `json:"aud"`
	AuthorizedParty string   `json:"azp"`
	Subject         string   `json:"sub"`
	Email           string   `json:"email"`
	EmailVerified   flexBool `json:"email_verified"`
	Expiry          flexInt  `json:"exp"`
}

type userInfoResponse struct {
	Subject       string   `json:"sub"`
	Email         string   `json:"email"`
	EmailVerified flexBool `json:"email_verified"`
	GivenName     string   `json:"given_name"`
	FamilyName    string   `json:"family_name"`
}

// flexBool decodes booleans Google sends either as JSON bool or as string.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		*b = false
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("decode bool %s: %w", data, err)
	}
	*b = flexBool(v)
	return nil
}

// flexInt decodes integers sent either as JSON number or as string.
type flexInt int64

func (i *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		*i = 0
		return nil
	}
	v, err := json.Number(s).Int64()
	if err != nil {
		return fmt.Errorf("decode int %s: %w", data, err)
	}
	*i = flexInt(v)
	return nil
}
