// Package session holds the process's authentication state: the current
// credential, its broadcast to observers, its persistence across restarts,
// and the expiry timer that clears it.
package session

import (
	"errors"
	"time"
)

// ErrInvalidExpiry is returned when a credential's validity window is empty
// or inverted.
var ErrInvalidExpiry = errors.New("credential expiry must be after issue time")

// Credential is the authenticated subject's bearer token plus its validity
// window. Values are immutable once constructed.
type Credential struct {
	UserID    string
	Email     string
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// NewCredential builds a Credential valid for ttl from issuedAt.
func NewCredential(userID, email, token string, issuedAt time.Time, ttl time.Duration) (Credential, error) {
	if ttl <= 0 {
		return Credential{}, ErrInvalidExpiry
	}
	return Credential{
		UserID:    userID,
		Email:     email,
		Token:     token,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(ttl),
	}, nil
}

// Valid reports whether the credential is usable at the given instant.
// A credential is invalid from its exact expiry time onward.
func (c Credential) Valid(now time.Time) bool {
	return now.Before(c.ExpiresAt)
}

// Session is the process's current authentication state: the zero value is
// logged out, Active wraps one Credential. The credential is retained after
// expiry until explicitly cleared; validity is always re-derived from the
// clock, never stored.
type Session struct {
	cred *Credential
}

// Active returns a Session holding the given credential.
func Active(c Credential) Session {
	return Session{cred: &c}
}

// IsActive reports whether a credential is held, regardless of validity.
func (s Session) IsActive() bool {
	return s.cred != nil
}

// Credential returns the held credential, if any.
func (s Session) Credential() (Credential, bool) {
	if s.cred == nil {
		return Credential{}, false
	}
	return *s.cred, true
}

// Valid reports whether the session holds a credential usable at now.
func (s Session) Valid(now time.Time) bool {
	return s.cred != nil && s.cred.Valid(now)
}

// Token returns the bearer token if the session is valid at now, otherwise
// the empty string.
func (s Session) Token(now time.Time) string {
	if !s.Valid(now) {
		return ""
	}
	return s.cred.Token
}
