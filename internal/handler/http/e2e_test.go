package http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-board/internal/app"
	"github.com/MKhiriev/go-job-board/internal/crypto"
	"github.com/MKhiriev/go-job-board/internal/events"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/token"
	"github.com/MKhiriev/go-job-board/internal/validators"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// In-memory repositories
// ─────────────────────────────────────────────

type memoryUsers struct {
	store.UserRepository

	mu       sync.Mutex
	nextID   int64
	users    map[int64]models.User
	profiles map[int64]models.Profile
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[int64]models.User), profiles: make(map[int64]models.Profile)}
}

func (m *memoryUsers) CreateUserWithProfile(_ context.Context, user models.User, profile models.Profile) (models.User, models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return models.User{}, nil, store.ErrEmailAlreadyExists
		}
	}
	m.nextID++
	user.UserID = m.nextID
	user.CreatedAt = time.Now()
	profile = models.WithOwner(profile, user.UserID)
	m.users[user.UserID] = user
	m.profiles[user.UserID] = profile
	return user, profile, nil
}

func (m *memoryUsers) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *memoryUsers) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *memoryUsers) FindProfile(_ context.Context, kind models.ProfileKind, userID int64) (models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.profiles[userID]; ok && p.Kind() == kind {
		return p, nil
	}
	return nil, store.ErrProfileNotFound
}

func (m *memoryUsers) UpdateProfile(_ context.Context, profile models.Profile) (models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile.OwnerID()] = profile
	return profile, nil
}

// newE2ERouter wires the real password issuer and authorization service
// over in-memory stores.
func newE2ERouter(t *testing.T) http.Handler {
	t.Helper()

	codec, err := token.NewCodec("e2e-sign-key", "go-job-board")
	require.NoError(t, err)
	hasher, err := crypto.NewBcryptHasher(crypto.MinCost)
	require.NoError(t, err)

	// memoryUsers serves both the user and the profile repository
	users := newMemoryUsers()
	profiles := users
	revocations := store.NewMemoryRevocationStore(time.Minute, logger.Nop())

	svcs, _ := newTestServices(t)
	svcs.AuthService = service.NewAuthService(users, profiles, hasher, codec,
		validators.NewRequestValidator(), events.NopPublisher{}, 24*time.Hour, logger.Nop())
	svcs.AuthorizationService = service.NewAuthorizationService(codec, revocations, users, profiles, logger.Nop())

	return newTestRouter(svcs)
}

// ─────────────────────────────────────────────
// register → login → verify → corrupted verify
// ─────────────────────────────────────────────

func TestEndToEnd_RegisterLoginVerify(t *testing.T) {
	router := newE2ERouter(t)

	body := `{"email":"Ada@Jobs.io","password":"analytical-engine","firstName":"Ada","lastName":"Lovelace","birthDate":"1815-12-10"}`
	rec := do(t, router, http.MethodPost, "/candidate/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decodeAuth(t, rec)
	assert.Equal(t, "ada@jobs.io", registered.User.Email)
	assert.Equal(t, models.RoleCandidate, registered.User.Role)
	assert.Equal(t, "Ada", registered.User.FirstName)

	// same email again
	rec = do(t, router, http.MethodPost, "/candidate/register", body, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, app.MsgEmailAlreadyRegistered, errorBody(t, rec))

	rec = do(t, router, http.MethodPost, "/user/login", `{"email":"ada@jobs.io","password":"analytical-engine"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	loggedIn := decodeAuth(t, rec)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.NotEqual(t, registered.Token, loggedIn.Token)

	rec = do(t, router, http.MethodPost, "/user/login", `{"email":"ada@jobs.io","password":"difference-engine"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgInvalidCredentials, errorBody(t, rec))

	rec = do(t, router, http.MethodGet, "/user/verify-token", "", loggedIn.Token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var verified models.VerifyTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verified))
	assert.True(t, verified.Valid)
	require.NotNil(t, verified.User)
	assert.Equal(t, loggedIn.User.ID, verified.User.ID)
	assert.Equal(t, "Lovelace", verified.User.LastName)

	// flip one character of the signature
	corrupted := []byte(loggedIn.Token)
	last := len(corrupted) - 5
	if corrupted[last] == 'A' {
		corrupted[last] = 'B'
	} else {
		corrupted[last] = 'A'
	}
	rec = do(t, router, http.MethodGet, "/user/verify-token", "", string(corrupted))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var rejected models.VerifyTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rejected))
	assert.False(t, rejected.Valid)
	assert.Nil(t, rejected.User)
	assert.Equal(t, app.MsgTokenIsInvalid, rejected.Error)

	// a candidate token does not open recruiter routes
	rec = do(t, router, http.MethodPost, "/recruiter/register/step2", `{"companyName":"Acme","sector":"IT"}`, loggedIn.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodPost, "/candidate/register/step2", `{"firstName":"Augusta","lastName":"King"}`, loggedIn.Token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"firstName":"Augusta"`)
}
