// Package guard authorizes entry to protected operations from a snapshot
// of session state.
package guard

import (
	"github.com/recipehub/recipectl/internal/clock"
	"github.com/recipehub/recipectl/internal/session"
)

// DefaultRedirect is the unauthenticated landing destination.
const DefaultRedirect = "/auth"

// Decision is the discriminated outcome of an authorization check: either
// allowed, or a redirect carrying the unauthenticated destination the
// dispatcher should send the user to.
type Decision struct {
	allowed bool
	target  string
}

// Allowed reports whether the operation may proceed.
func (d Decision) Allowed() bool {
	return d.allowed
}

// Redirect returns the destination for a denied check, and whether the
// decision is a redirect.
func (d Decision) Redirect() (string, bool) {
	return d.target, !d.allowed
}

// Allow returns the allowing decision.
func Allow() Decision {
	return Decision{allowed: true}
}

// RedirectTo returns a denying decision carrying the given destination.
func RedirectTo(target string) Decision {
	return Decision{target: target}
}

// Guard checks a session snapshot before a protected operation runs.
type Guard struct {
	state  *session.State
	clk    clock.Clock
	target string
}

// New creates a Guard redirecting denied checks to target
// (DefaultRedirect if empty).
func New(state *session.State, clk clock.Clock, target string) *Guard {
	if target == "" {
		target = DefaultRedirect
	}
	return &Guard{state: state, clk: clk, target: target}
}

// Check takes one snapshot of session state: a valid active session
// allows, anything else redirects. Absence of a session is not an error.
func (g *Guard) Check() Decision {
	if g.state.Current().Valid(g.clk.Now()) {
		return Allow()
	}
	return RedirectTo(g.target)
}
