// Package transport builds the HTTP client used for authenticated API
// calls: a bearer-token augmenting round tripper layered over a caching
// transport.
package transport

import (
	"net/http"

	"github.com/recipehub/recipectl/internal/clock"
	"github.com/recipehub/recipectl/internal/session"
)

// Augmenter is an http.RoundTripper that attaches the session's bearer
// token to outgoing requests. It reads one snapshot of session state per
// request at dispatch time; without a valid session the request passes
// through unmodified. The caller's request is never mutated, since it may
// be reused by a retry path.
type Augmenter struct {
	state *session.State
	clk   clock.Clock
	base  http.RoundTripper
}

// NewAugmenter wraps base (http.DefaultTransport if nil).
func NewAugmenter(state *session.State, clk clock.Clock, base http.RoundTripper) *Augmenter {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Augmenter{state: state, clk: clk, base: base}
}

// RoundTrip implements http.RoundTripper.
func (a *Augmenter) RoundTrip(req *http.Request) (*http.Response, error) {
	token := a.state.Current().Token(a.clk.Now())
	if token == "" {
		return a.base.RoundTrip(req)
	}

	authed := req.Clone(req.Context())
	authed.Header.Set("Authorization", "Bearer "+token)
	return a.base.RoundTrip(authed)
}
