package gateway

import (
	"errors"
	"fmt"
)

// Stable failure kinds mapped from provider error codes. Callers branch
// with errors.Is; everything unrecognized maps to ErrUnknown.
var (
	// ErrEmailAlreadyRegistered is returned by signup when the email is taken.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrEmailNotFound is returned by login when no account matches the email.
	ErrEmailNotFound = errors.New("email not found")

	// ErrInvalidCredential is returned by login when the password is wrong.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrUnknown covers every provider failure without a stable mapping.
	ErrUnknown = errors.New("authentication failed")
)

// Error is a provider failure carrying the raw code alongside its mapped
// kind. Unwrap exposes the kind sentinel so errors.Is works.
type Error struct {
	kind       error
	Code       string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%v (status %d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%v (%s)", e.kind, e.Code)
}

func (e *Error) Unwrap() error {
	return e.kind
}

// mapProviderCode translates a provider error code to its stable kind.
func mapProviderCode(code string) error {
	switch code {
	case "EMAIL_EXISTS":
		return ErrEmailAlreadyRegistered
	case "EMAIL_NOT_FOUND":
		return ErrEmailNotFound
	case "INVALID_PASSWORD":
		return ErrInvalidCredential
	default:
		return ErrUnknown
	}
}
