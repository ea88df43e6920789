package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrRejectedToken is returned when the provider refuses the access
	// token (4xx) or its responses do not describe one consistent identity.
	ErrRejectedToken = errors.New("identity provider rejected the access token")
	// ErrUnavailable covers timeouts, transport errors, 5xx answers,
	// unreadable bodies and an open circuit breaker.
	ErrUnavailable = errors.New("identity provider unavailable")

	ErrSubjectMismatch = fmt.Errorf("%w: subject differs between tokeninfo and userinfo", ErrRejectedToken)
)
