package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/mock"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/models"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Fakes outside the service layer
// ─────────────────────────────────────────────

type fakePushServer struct {
	serveFn func(w http.ResponseWriter, r *http.Request, principal models.Principal) error
}

func (f *fakePushServer) ServeWS(w http.ResponseWriter, r *http.Request, principal models.Principal) error {
	return f.serveFn(w, r, principal)
}

type fakeHealth struct {
	err error
}

func (f *fakeHealth) Ping(context.Context) error {
	return f.err
}

// ─────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────

var (
	candidateUser = models.User{UserID: 2, Email: "c@jobs.io", Role: models.RoleCandidate, IsActive: true}
	recruiterUser = models.User{UserID: 3, Email: "r@jobs.io", Role: models.RoleRecruiter, IsActive: true}
	adminUser     = models.User{UserID: 1, Email: "root@jobs.io", Role: models.RoleAdmin, IsActive: true}
)

func principalOf(user models.User) models.Principal {
	return models.Principal{
		Token:   models.Token{ID: "jti-" + user.Role.String(), SubjectID: user.UserID, Role: user.Role, SignedString: "token-" + user.Role.String()},
		User:    user,
		Profile: models.NewEmptyProfile(user.Role, user.UserID),
	}
}

func authResultOf(user models.User, signed string) models.AuthResult {
	return models.AuthResult{
		Token:   models.Token{SignedString: signed, SubjectID: user.UserID, Role: user.Role},
		User:    user,
		Profile: models.NewEmptyProfile(user.Role, user.UserID),
	}
}

// tokenAuthorizer accepts "token-<role>" for the fixture users and rejects
// everything else as an invalid token.
func tokenAuthorizer(ctrl *gomock.Controller) *mock.MockAuthorizationService {
	byToken := map[string]models.User{
		"token-candidate": candidateUser,
		"token-recruiter": recruiterUser,
		"token-admin":     adminUser,
	}
	authz := mock.NewMockAuthorizationService(ctrl)
	authz.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, raw string, allowed models.RoleSet) (models.Principal, error) {
			if raw == "" {
				return models.Principal{}, service.ErrNoToken
			}
			user, ok := byToken[raw]
			if !ok {
				return models.Principal{}, service.ErrTokenInvalid
			}
			if !allowed.Contains(user.Role) {
				return models.Principal{}, service.ErrRoleMismatch
			}
			return principalOf(user), nil
		}).AnyTimes()
	return authz
}

// serviceMocks are the services a test sets expectations on. A call nobody
// expected fails the test.
type serviceMocks struct {
	auth    *mock.MockAuthService
	google  *mock.MockGoogleSignInService
	session *mock.MockSessionService
}

// newTestServices backs every service with a mock. Authorization accepts
// the fixture tokens and app info reports build 1.2.3.
func newTestServices(t *testing.T) (*service.Services, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		auth:    mock.NewMockAuthService(ctrl),
		google:  mock.NewMockGoogleSignInService(ctrl),
		session: mock.NewMockSessionService(ctrl),
	}

	build := models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc1234")
	info := mock.NewMockAppInfoService(ctrl)
	info.EXPECT().GetAppVersion(gomock.Any()).Return(build.BuildVersion()).AnyTimes()
	info.EXPECT().GetBuildInfo(gomock.Any()).Return(build).AnyTimes()

	return &service.Services{
		AuthService:          m.auth,
		GoogleSignInService:  m.google,
		AuthorizationService: tokenAuthorizer(ctrl),
		SessionService:       m.session,
		AppInfoService:       info,
	}, m
}

func newTestRouter(svcs *service.Services) http.Handler {
	return NewHandler(svcs, nil, nil, logger.Nop()).Init()
}
