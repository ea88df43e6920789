package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	push := &fakePushServer{}
	health := &fakeHealth{}
	log := logger.Nop()

	h := NewHandler(svcs, push, health, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, push, h.push)
	assert.Equal(t, health, h.health)
	assert.Same(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

type routeCase struct {
	method string
	path   string
}

// publicRoutes answer without a token; with an empty body they fail
// validation, never with 401 or 404.
var publicRoutes = []routeCase{
	{http.MethodPost, "/user/login"},
	{http.MethodPost, "/user/auth/google-signin"},
	{http.MethodPost, "/candidate/register"},
	{http.MethodPost, "/candidate/auth/google-signin"},
	{http.MethodPost, "/recruiter/register"},
	{http.MethodPost, "/auth/refresh"},
}

var protectedRoutes = []routeCase{
	{http.MethodGet, "/user/verify-token"},
	{http.MethodPost, "/auth/logout"},
	{http.MethodPost, "/candidate/register/step2"},
	{http.MethodPost, "/recruiter/register/step2"},
	{http.MethodPost, "/admin/users/2/suspend"},
	{http.MethodPost, "/admin/users/2/logout"},
	{http.MethodDelete, "/admin/users/2"},
}

func TestInit_PublicRoutes(t *testing.T) {
	svcs, _ := newTestServices(t)
	router := newTestRouter(svcs)

	for _, rc := range publicRoutes {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			rec := do(t, router, rc.method, rc.path, "", "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestInit_ProtectedRoutes_RequireToken(t *testing.T) {
	svcs, _ := newTestServices(t)
	router := newTestRouter(svcs)

	for _, rc := range protectedRoutes {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			rec := do(t, router, rc.method, rc.path, "", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	svcs, _ := newTestServices(t)
	router := newTestRouter(svcs)

	for _, path := range []string{"/", "/api/user/login", "/admin/users", "/user/login/extra"} {
		t.Run(path, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, path, "", "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	svcs, _ := newTestServices(t)
	router := newTestRouter(svcs)

	for _, rc := range []routeCase{
		{http.MethodGet, "/user/login"},
		{http.MethodPut, "/candidate/register"},
		{http.MethodPost, "/version"},
		{http.MethodDelete, "/auth/refresh"},
	} {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			rec := do(t, router, rc.method, rc.path, "", "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	svcs, _ := newTestServices(t)
	router := newTestRouter(svcs)

	rec := do(t, router, http.MethodGet, "/version", "", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, "trace-from-client")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-from-client", rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	svcs, m := newTestServices(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.LoginRequest) (models.AuthResult, error) {
			panic("boom")
		})

	rec := do(t, newTestRouter(svcs), http.MethodPost, "/user/login", `{"email":"a@b.c","password":"x"}`, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// Service endpoints
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	svcs, _ := newTestServices(t)
	rec := do(t, newTestRouter(svcs), http.MethodGet, "/version", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.VersionResponse{Version: "1.2.3", Date: "2026-10-01", Commit: "abc1234"}, resp)
}

func TestHealthz(t *testing.T) {
	tests := []struct {
		name       string
		health     HealthChecker
		wantStatus int
	}{
		{name: "no checker", health: nil, wantStatus: http.StatusOK},
		{name: "stores reachable", health: &fakeHealth{}, wantStatus: http.StatusOK},
		{name: "store down", health: &fakeHealth{err: errors.New("dial tcp: refused")}, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs, _ := newTestServices(t)
			router := NewHandler(svcs, nil, tt.health, logger.Nop()).Init()

			rec := do(t, router, http.MethodGet, "/healthz", "", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotContains(t, rec.Body.String(), "refused")
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	svcs, _ := newTestServices(t)
	router := newTestRouter(svcs)
	do(t, router, http.MethodGet, "/version", "", "")

	rec := do(t, router, http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `jobboard_http_requests_total{method="GET",route="/version",status="200"}`)
}

// ─────────────────────────────────────────────
// GET /ws
// ─────────────────────────────────────────────

func TestServeWS(t *testing.T) {
	var attached []models.Principal
	push := &fakePushServer{
		serveFn: func(w http.ResponseWriter, _ *http.Request, principal models.Principal) error {
			attached = append(attached, principal)
			w.WriteHeader(http.StatusSwitchingProtocols)
			return nil
		},
	}
	svcs, _ := newTestServices(t)
	router := NewHandler(svcs, push, nil, logger.Nop()).Init()

	t.Run("token in query", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/ws?token=token-candidate", "", "")
		assert.Equal(t, http.StatusSwitchingProtocols, rec.Code)
	})

	t.Run("token in header", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/ws", "", "token-recruiter")
		assert.Equal(t, http.StatusSwitchingProtocols, rec.Code)
	})

	t.Run("rejected handshake never reaches the hub", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/ws?token=forged", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	require.Len(t, attached, 2)
	assert.Equal(t, candidateUser.UserID, attached[0].User.UserID)
	assert.Equal(t, recruiterUser.UserID, attached[1].User.UserID)
}

func TestServeWS_NotRegisteredWithoutHub(t *testing.T) {
	svcs, _ := newTestServices(t)
	rec := do(t, newTestRouter(svcs), http.MethodGet, "/ws?token=token-candidate", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
