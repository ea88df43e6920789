package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-job-board/internal/app"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/internal/utils"
)

// errorStatusMap holds the top-level service sentinels. Every service error
// matches exactly one of them.
var errorStatusMap = map[error]int{
	service.ErrInvalidData:         http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrDuplicateIdentity:   http.StatusConflict,
	service.ErrUnverifiedIdentity:  http.StatusForbidden,
	service.ErrAudienceMismatch:    http.StatusUnauthorized,
	service.ErrUnknownIdentity:     http.StatusNotFound,
	service.ErrIdentityConflict:    http.StatusConflict,
	service.ErrUnauthenticated:     http.StatusUnauthorized,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrUpstreamUnavailable: http.StatusBadGateway,
	service.ErrServerFault:         http.StatusInternalServerError,
}

// errorMessages is checked in order: refined variants come before the
// sentinel they wrap.
var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrInvalidData, app.MsgInvalidDataProvided},
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrDuplicateExternalIdentity, app.MsgEmailRegisteredWithGoogle},
	{service.ErrDuplicateIdentity, app.MsgEmailAlreadyRegistered},
	{service.ErrUnverifiedIdentity, app.MsgEmailNotVerified},
	{service.ErrAudienceMismatch, app.MsgAudienceMismatch},
	{service.ErrUnknownIdentity, app.MsgUnknownIdentity},
	{service.ErrIdentityConflict, app.MsgIdentityConflict},
	{service.ErrNoToken, app.MsgTokenRequired},
	{service.ErrTokenExpired, app.MsgTokenIsExpired},
	{service.ErrTokenRevoked, app.MsgTokenRevoked},
	{service.ErrUnauthenticated, app.MsgTokenIsInvalid},
	{service.ErrUserInactive, app.MsgAccountInactive},
	{service.ErrUserMissing, app.MsgUserNotFound},
	{service.ErrProfileMissing, app.MsgProfileNotFound},
	{service.ErrForbidden, app.MsgAccessDenied},
	{service.ErrUpstreamUnavailable, app.MsgGoogleUnavailable},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}

// writeError answers {"error": message} with the status of err. Server
// faults are logged with the full error; the client only sees the generic
// message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logRejection(r, err, status)

	utils.WriteError(w, messageFromError(err), status)
}

func logRejection(r *http.Request, err error, status int) {
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		return
	}
	log.Debug().Err(err).Int("status", status).Msg("request rejected")
}
