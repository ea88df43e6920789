package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-board/internal/crypto"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/mock"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/token"
	"github.com/MKhiriev/go-job-board/internal/validators"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey       = "test-sign-key-0123456789abcdef"
	testIssuer        = "go-job-board-test"
	testTokenDuration = 24 * time.Hour
	testRefreshGrace  = 7 * 24 * time.Hour
)

// testNow is the fixed clock of every codec built by newTestCodec.
var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestCodec(t *testing.T, now func() time.Time) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec(testSignKey, testIssuer, token.WithClock(now))
	require.NoError(t, err)
	return codec
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// nopPublisher accepts any number of events.
func nopPublisher(ctrl *gomock.Controller) *mock.MockPublisher {
	p := mock.NewMockPublisher(ctrl)
	p.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return p
}

type authFixture struct {
	svc       *authService
	users     *mock.MockUserRepository
	profiles  *mock.MockProfileRepository
	hasher    *mock.MockPasswordHasher
	publisher *mock.MockPublisher
	codec     *token.Codec
}

// newAuthFixture: хелпер: authService с моками репозиториев и настоящим кодеком
func newAuthFixture(t *testing.T, ctrl *gomock.Controller) *authFixture {
	t.Helper()
	f := &authFixture{
		users:     mock.NewMockUserRepository(ctrl),
		profiles:  mock.NewMockProfileRepository(ctrl),
		hasher:    mock.NewMockPasswordHasher(ctrl),
		publisher: mock.NewMockPublisher(ctrl),
		codec:     newTestCodec(t, fixedClock(testNow)),
	}
	f.svc = NewAuthService(
		f.users, f.profiles, f.hasher, f.codec,
		validators.NewRequestValidator(), f.publisher,
		testTokenDuration, logger.Nop(),
	).(*authService)
	return f
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_RegisterCandidate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl)
	ctx := context.Background()

	f.users.EXPECT().FindUserByEmail(gomock.Any(), "jane@jobs.io").Return(models.User{}, store.ErrUserNotFound)
	f.hasher.EXPECT().Hash("password123").Return("bcrypt-hash", nil)
	f.users.EXPECT().CreateUserWithProfile(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User, profile models.Profile) (models.User, models.Profile, error) {
			assert.Equal(t, "jane@jobs.io", user.Email)
			assert.Equal(t, "bcrypt-hash", user.PasswordHash)
			assert.Equal(t, models.RoleCandidate, user.Role)
			assert.True(t, user.IsActive)
			assert.Nil(t, user.GoogleID)

			cp, ok := profile.(models.CandidateProfile)
			require.True(t, ok)
			assert.Equal(t, "Jane", cp.FirstName)
			assert.Equal(t, "Doe", cp.LastName)

			user.UserID = 42
			cp.UserID = 42
			return user, cp, nil
		})
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e models.AuthEvent) error {
		assert.Equal(t, models.AuthEventUserRegistered, e.Type)
		assert.Equal(t, int64(42), e.UserID)
		assert.Equal(t, models.AuthMethodPassword, e.Method)
		return nil
	})

	result, err := f.svc.RegisterCandidate(ctx, models.CandidateRegistrationRequest{
		Email:     "  Jane@Jobs.io ",
		Password:  "password123",
		FirstName: " Jane ",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.User.UserID)
	assert.Equal(t, models.ProfileKindCandidate, result.Profile.Kind())

	tok, err := f.codec.Verify(result.Token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), tok.SubjectID)
	assert.Equal(t, models.RoleCandidate, tok.Role)
	assert.Equal(t, testNow.Add(testTokenDuration), tok.ExpiresAt)
}

func TestAuthService_RegisterRecruiter_RoleIsFixed(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl)
	ctx := context.Background()

	f.users.EXPECT().FindUserByEmail(gomock.Any(), "hr@acme.io").Return(models.User{}, store.ErrUserNotFound)
	f.hasher.EXPECT().Hash("password123").Return("hash", nil)
	f.users.EXPECT().CreateUserWithProfile(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User, profile models.Profile) (models.User, models.Profile, error) {
			assert.Equal(t, models.RoleRecruiter, user.Role)
			rp, ok := profile.(models.RecruiterProfile)
			require.True(t, ok)
			assert.Equal(t, "Acme", rp.CompanyName)
			user.UserID = 7
			rp.UserID = 7
			return user, rp, nil
		})
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	// ошибка брокера не должна ломать регистрацию
	result, err := f.svc.RegisterRecruiter(ctx, models.RecruiterRegistrationRequest{
		Email:       "hr@acme.io",
		Password:    "password123",
		CompanyName: "Acme",
		Sector:      "IT",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleRecruiter, result.Token.Role)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	googleID := "google-sub-1"

	tests := []struct {
		name     string
		existing models.User
		wantErr  error
	}{
		{
			name:     "password account",
			existing: models.User{UserID: 1, Email: "jane@jobs.io", PasswordHash: "hash", Role: models.RoleCandidate},
			wantErr:  ErrDuplicateIdentity,
		},
		{
			name:     "google only account",
			existing: models.User{UserID: 1, Email: "jane@jobs.io", GoogleID: &googleID, Role: models.RoleCandidate},
			wantErr:  ErrDuplicateExternalIdentity,
		},
		{
			name:     "password and google",
			existing: models.User{UserID: 1, Email: "jane@jobs.io", PasswordHash: "hash", GoogleID: &googleID, Role: models.RoleCandidate},
			wantErr:  ErrDuplicateIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newAuthFixture(t, ctrl)

			f.users.EXPECT().FindUserByEmail(gomock.Any(), "jane@jobs.io").Return(tt.existing, nil)

			_, err := f.svc.RegisterCandidate(context.Background(), models.CandidateRegistrationRequest{
				Email:    "jane@jobs.io",
				Password: "password123",
			})
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrDuplicateIdentity)
			if tt.wantErr == ErrDuplicateIdentity {
				assert.NotErrorIs(t, err, ErrDuplicateExternalIdentity)
			}
		})
	}
}

func TestAuthService_Register_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		f.users.EXPECT().FindUserByEmail(gomock.Any(), "jane@jobs.io").Return(models.User{}, store.ErrUserNotFound),
		f.hasher.EXPECT().Hash("password123").Return("hash", nil),
		f.users.EXPECT().CreateUserWithProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.User{}, nil, store.ErrEmailAlreadyExists),
		f.users.EXPECT().FindUserByEmail(gomock.Any(), "jane@jobs.io").
			Return(models.User{UserID: 9, PasswordHash: "other"}, nil),
	)

	_, err := f.svc.RegisterCandidate(ctx, models.CandidateRegistrationRequest{
		Email:    "jane@jobs.io",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestAuthService_Register_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		req  models.CandidateRegistrationRequest
	}{
		{name: "empty email", req: models.CandidateRegistrationRequest{Password: "password123"}},
		{name: "bad email", req: models.CandidateRegistrationRequest{Email: "not-an-email", Password: "password123"}},
		{name: "short password", req: models.CandidateRegistrationRequest{Email: "a@b.io", Password: "short"}},
		{name: "birth date in future", req: models.CandidateRegistrationRequest{
			Email:     "a@b.io",
			Password:  "password123",
			BirthDate: models.NewDate(time.Now().AddDate(1, 0, 0)),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newAuthFixture(t, ctrl)

			// никаких обращений к репозиториям: моки упадут на неожиданном вызове
			_, err := f.svc.RegisterCandidate(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidData)
		})
	}
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl)

	f.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("connection reset"))

	_, err := f.svc.RegisterRecruiter(context.Background(), models.RecruiterRegistrationRequest{
		Email:    "hr@acme.io",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrServerFault)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 5, Email: "jane@jobs.io", PasswordHash: "hash", Role: models.RoleCandidate, IsActive: true}
	profile := models.CandidateProfile{UserID: 5, FirstName: "Jane"}

	f.users.EXPECT().FindUserByEmail(gomock.Any(), "jane@jobs.io").Return(user, nil)
	f.hasher.EXPECT().Compare("hash", "password123").Return(nil)
	f.profiles.EXPECT().FindProfile(gomock.Any(), models.ProfileKindCandidate, int64(5)).Return(profile, nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e models.AuthEvent) error {
		assert.Equal(t, models.AuthEventUserSignedIn, e.Type)
		return nil
	})

	result, err := f.svc.Login(ctx, models.LoginRequest{Email: "JANE@jobs.io", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, profile, result.Profile)
	assert.Equal(t, "Jane", result.View().User.FirstName)

	tok, err := f.codec.Verify(result.Token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(5), tok.SubjectID)
}

func TestAuthService_Login_CredentialFailuresAreIndistinguishable(t *testing.T) {
	googleID := "sub"

	tests := []struct {
		name  string
		setup func(f *authFixture)
	}{
		{
			name: "unknown email",
			setup: func(f *authFixture) {
				f.users.EXPECT().FindUserByEmail(gomock.Any(), "jane@jobs.io").Return(models.User{}, store.ErrUserNotFound)
				f.hasher.EXPECT().CompareDummy("password123")
			},
		},
		{
			name: "google only account",
			setup: func(f *authFixture) {
				f.users.EXPECT().FindUserByEmail(gomock.Any(), "jane@jobs.io").
					Return(models.User{UserID: 1, GoogleID: &googleID, Role: models.RoleCandidate, IsActive: true}, nil)
				f.hasher.EXPECT().CompareDummy("password123")
			},
		},
		{
			name: "wrong password",
			setup: func(f *authFixture) {
				f.users.EXPECT().FindUserByEmail(gomock.Any(), "jane@jobs.io").
					Return(models.User{UserID: 1, PasswordHash: "hash", Role: models.RoleCandidate, IsActive: true}, nil)
				f.hasher.EXPECT().Compare("hash", "password123").Return(crypto.ErrMismatchedPassword)
			},
		},
	}

	var errs []error
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newAuthFixture(t, ctrl)
			tt.setup(f)

			_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: "jane@jobs.io", Password: "password123"})
			require.ErrorIs(t, err, ErrInvalidCredentials)
			errs = append(errs, err)
		})
	}

	for _, err := range errs {
		assert.Equal(t, ErrInvalidCredentials.Error(), err.Error())
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl)

	f.users.EXPECT().FindUserByEmail(gomock.Any(), "jane@jobs.io").
		Return(models.User{UserID: 1, PasswordHash: "hash", Role: models.RoleCandidate}, nil)
	f.hasher.EXPECT().Compare("hash", "password123").Return(nil)

	_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: "jane@jobs.io", Password: "password123"})
	assert.ErrorIs(t, err, ErrUserInactive)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAuthService_Login_ProfileMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl)

	f.users.EXPECT().FindUserByEmail(gomock.Any(), "root@jobs.io").
		Return(models.User{UserID: 1, PasswordHash: "hash", Role: models.RoleAdmin, IsActive: true}, nil)
	f.hasher.EXPECT().Compare("hash", "password123").Return(nil)
	f.profiles.EXPECT().FindProfile(gomock.Any(), models.ProfileKindAdmin, int64(1)).Return(nil, store.ErrProfileNotFound)

	_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: "root@jobs.io", Password: "password123"})
	assert.ErrorIs(t, err, ErrProfileMissing)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl)

	_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: "jane@jobs.io"})
	assert.ErrorIs(t, err, ErrInvalidData)
}

// Register then Login with a real bcrypt hasher against an in-memory user.
func TestAuthService_RegisterLoginRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	profiles := mock.NewMockProfileRepository(ctrl)
	codec := newTestCodec(t, fixedClock(testNow))

	hasher, err := crypto.NewBcryptHasher(crypto.MinCost)
	require.NoError(t, err)

	svc := NewAuthService(users, profiles, hasher, codec, validators.NewRequestValidator(),
		nopPublisher(ctrl), testTokenDuration, logger.Nop())

	var stored models.User
	var storedProfile models.Profile
	users.EXPECT().FindUserByEmail(gomock.Any(), "jane@jobs.io").DoAndReturn(
		func(context.Context, string) (models.User, error) {
			if stored.UserID == 0 {
				return models.User{}, store.ErrUserNotFound
			}
			return stored, nil
		}).Times(2)
	users.EXPECT().CreateUserWithProfile(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User, profile models.Profile) (models.User, models.Profile, error) {
			user.UserID = 1
			stored = user
			storedProfile = models.WithOwner(profile, 1)
			return stored, storedProfile, nil
		})
	profiles.EXPECT().FindProfile(gomock.Any(), models.ProfileKindCandidate, int64(1)).DoAndReturn(
		func(context.Context, models.ProfileKind, int64) (models.Profile, error) {
			return storedProfile, nil
		})

	registered, err := svc.RegisterCandidate(context.Background(), models.CandidateRegistrationRequest{
		Email:    "jane@jobs.io",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)

	loggedIn, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "jane@jobs.io",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.UserID, loggedIn.User.UserID)
	assert.Equal(t, registered.Token.Role, loggedIn.Token.Role)
}

// ── Complete profile ─────────────────────────────────────────────────────────

func TestAuthService_CompleteCandidateProfile(t *testing.T) {
	principal := models.Principal{User: models.User{UserID: 3, Email: "c@jobs.io", Role: models.RoleCandidate, IsActive: true}}
	birth := models.NewDate(time.Date(1995, time.May, 4, 0, 0, 0, 0, time.UTC))

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newAuthFixture(t, ctrl)

		f.profiles.EXPECT().UpdateProfile(gomock.Any(), models.CandidateProfile{
			UserID: 3, FirstName: "Jane", LastName: "Doe", BirthDate: birth,
		}).DoAndReturn(func(_ context.Context, p models.Profile) (models.Profile, error) {
			return p, nil
		})

		view, err := f.svc.CompleteCandidateProfile(context.Background(), principal, models.CandidateProfileRequest{
			FirstName: "Jane ", LastName: "Doe", BirthDate: birth,
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane", view.FirstName)
		require.NotNil(t, view.BirthDate)
		assert.Equal(t, birth, *view.BirthDate)
	})

	t.Run("wrong role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newAuthFixture(t, ctrl)

		recruiter := principal
		recruiter.User.Role = models.RoleRecruiter
		_, err := f.svc.CompleteCandidateProfile(context.Background(), recruiter, models.CandidateProfileRequest{
			FirstName: "Jane", LastName: "Doe",
		})
		assert.ErrorIs(t, err, ErrRoleMismatch)
	})

	t.Run("missing names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newAuthFixture(t, ctrl)

		_, err := f.svc.CompleteCandidateProfile(context.Background(), principal, models.CandidateProfileRequest{})
		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("profile gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newAuthFixture(t, ctrl)

		f.profiles.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil, store.ErrProfileNotFound)
		_, err := f.svc.CompleteCandidateProfile(context.Background(), principal, models.CandidateProfileRequest{
			FirstName: "Jane", LastName: "Doe",
		})
		assert.ErrorIs(t, err, ErrProfileMissing)
	})
}

func TestAuthService_CompleteRecruiterProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl)
	principal := models.Principal{User: models.User{UserID: 8, Role: models.RoleRecruiter, IsActive: true}}

	f.profiles.EXPECT().UpdateProfile(gomock.Any(), models.RecruiterProfile{
		UserID: 8, CompanyName: "Acme", Sector: "Retail",
	}).DoAndReturn(func(_ context.Context, p models.Profile) (models.Profile, error) {
		return p, nil
	})

	view, err := f.svc.CompleteRecruiterProfile(context.Background(), principal, models.RecruiterProfileRequest{
		CompanyName: "Acme", Sector: "Retail",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", view.CompanyName)
	assert.Equal(t, "Acme", view.DisplayName())
}
