package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/recipehub/recipectl/internal/clock"
	"github.com/recipehub/recipectl/internal/gateway"
)

// ErrLoginSuperseded is returned when a login or signup response arrives
// after a newer attempt or a logout has already moved the session on. The
// stale result is discarded rather than applied.
var ErrLoginSuperseded = errors.New("login superseded by a newer attempt")

// Authenticator is the remote identity provider consumed by the Controller.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (gateway.Envelope, error)
	Signup(ctx context.Context, email, password string) (gateway.Envelope, error)
}

// Store persists the last active credential across restarts.
type Store interface {
	Save(cred *Credential) error
	Load() *Credential
}

// Controller is the single writer of State. It orchestrates login, signup,
// logout, and startup auto-login, and guards against in-flight gateway
// responses landing on a session that has since changed.
type Controller struct {
	gw    Authenticator
	state *State
	store Store
	clk   clock.Clock

	mu      sync.Mutex
	attempt uint64
}

// NewController creates the controller. It does not touch State; call
// AutoLogin once at startup to restore a persisted session.
func NewController(gw Authenticator, state *State, store Store, clk clock.Clock) *Controller {
	return &Controller{gw: gw, state: state, store: store, clk: clk}
}

// Login authenticates against the provider and, on success, activates and
// persists the resulting credential. On failure the session is untouched
// and the provider error kind is surfaced; there is no automatic retry of
// the authentication outcome.
func (c *Controller) Login(ctx context.Context, email, password string) (Credential, error) {
	return c.authenticate(ctx, email, password, c.gw.Login)
}

// Signup registers a new account; otherwise identical to Login.
func (c *Controller) Signup(ctx context.Context, email, password string) (Credential, error) {
	return c.authenticate(ctx, email, password, c.gw.Signup)
}

type authCall func(ctx context.Context, email, password string) (gateway.Envelope, error)

func (c *Controller) authenticate(ctx context.Context, email, password string, call authCall) (Credential, error) {
	gen := c.beginAttempt()

	env, err := call(ctx, email, password)
	if err != nil {
		log.Debug().Err(err).Str("email", email).Msg("authentication failed")
		return Credential{}, err
	}

	c.mu.Lock()
	if gen != c.attempt {
		c.mu.Unlock()
		log.Debug().
			Uint64("gen", gen).
			Str("email", email).
			Msg("discarding stale authentication response")
		return Credential{}, ErrLoginSuperseded
	}
	c.mu.Unlock()

	now := c.clk.Now()
	cred, err := NewCredential(env.UserID, env.Email, env.IDToken, now, time.Duration(env.ExpiresIn)*time.Second)
	if err != nil {
		return Credential{}, err
	}

	c.state.Set(Active(cred))
	if err := c.store.Save(&cred); err != nil {
		log.Warn().Err(err).Msg("failed to persist session")
	}

	log.Info().
		Str("email", cred.Email).
		Time("expiresAt", cred.ExpiresAt).
		Msg("logged in")

	return cred, nil
}

// beginAttempt invalidates prior in-flight attempts and returns the new
// generation.
func (c *Controller) beginAttempt() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attempt++
	return c.attempt
}

// Logout clears the session and its persisted mirror. Idempotent: calling
// it on an empty session only rewrites the already-empty document. Any
// in-flight login response is invalidated.
func (c *Controller) Logout() {
	c.beginAttempt()

	wasActive := c.state.Current().IsActive()
	c.state.Set(Session{})
	if err := c.store.Save(nil); err != nil {
		log.Warn().Err(err).Msg("failed to clear persisted session")
	}

	if wasActive {
		log.Info().Msg("logged out")
	}
}

// AutoLogin restores a persisted session at process start. A still-valid
// credential is reactivated for its remaining duration; an expired one is
// erased; absence is a no-op. Call exactly once.
func (c *Controller) AutoLogin() {
	cred := c.store.Load()
	if cred == nil {
		return
	}

	if !cred.Valid(c.clk.Now()) {
		log.Debug().
			Str("email", cred.Email).
			Time("expiresAt", cred.ExpiresAt).
			Msg("persisted session expired, clearing")
		if err := c.store.Save(nil); err != nil {
			log.Warn().Err(err).Msg("failed to clear persisted session")
		}
		return
	}

	c.state.Set(Active(*cred))
	log.Info().
		Str("email", cred.Email).
		Time("expiresAt", cred.ExpiresAt).
		Msg("restored persisted session")
}
