package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Transport classes of a non-2xx server answer.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrUnreachable wraps every failure to get an answer at all: refused
	// connections, timeouts, TLS errors.
	ErrUnreachable = errors.New("server unreachable")

	ErrEmptyToken     = errors.New("server returned no token")
	ErrEmptyAddress   = errors.New("empty address")
	ErrInvalidAddress = errors.New("address must include host and scheme")
)

// StatusError is a non-2xx answer. Message is the "error" field of the JSON
// body, or the raw body when it is not JSON.
type StatusError struct {
	Status  int
	Message string

	class error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.class, e.Message)
}

func (e *StatusError) Unwrap() error {
	return e.class
}

// NewStatusError builds the error of a status answer. An empty message
// becomes the status text.
func NewStatusError(status int, message string) *StatusError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &StatusError{Status: status, Message: message, class: classOf(status)}
}

// Message returns the server message carried by err, or err.Error() when
// err is not a [StatusError].
func Message(err error) string {
	if err == nil {
		return ""
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message
	}
	return err.Error()
}

func classOf(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}
