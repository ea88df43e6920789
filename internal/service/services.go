package service

import (
	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/crypto"
	"github.com/MKhiriev/go-job-board/internal/events"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/provider"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/validators"
	"github.com/MKhiriev/go-job-board/models"
)

type Services struct {
	AuthService          AuthService
	GoogleSignInService  GoogleSignInService
	AuthorizationService AuthorizationService
	SessionService       SessionService
	AppInfoService       AppInfoService
}

// Dependencies are the collaborators of the services that do not live in
// the store.
type Dependencies struct {
	Codec     TokenCodec
	Hasher    crypto.PasswordHasher
	Validator validators.Validator
	Provider  provider.IdentityProvider
	Publisher events.Publisher
	Notifier  SessionNotifier

	Build models.AppBuildInfo
}

func NewServices(storages *store.Storages, deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, deps.Build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			storages.ProfileRepository,
			deps.Hasher,
			deps.Codec,
			deps.Validator,
			deps.Publisher,
			cfg.App.TokenDuration,
			logger,
		),
		GoogleSignInService: NewGoogleSignInService(
			deps.Provider,
			storages.UserRepository,
			storages.ProfileRepository,
			deps.Codec,
			deps.Publisher,
			cfg.Google.ClientID,
			cfg.App.TokenDuration,
			logger,
		),
		AuthorizationService: NewAuthorizationService(
			deps.Codec,
			storages.RevocationStore,
			storages.UserRepository,
			storages.ProfileRepository,
			logger,
		),
		SessionService: NewSessionService(
			deps.Codec,
			storages.RevocationStore,
			storages.UserRepository,
			storages.ProfileRepository,
			deps.Notifier,
			deps.Publisher,
			cfg.App.TokenDuration,
			cfg.App.RefreshGrace,
			logger,
		),
		AppInfoService: appInfo,
	}, nil
}
