package session

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/recipehub/recipectl/internal/clock"
)

// AutoLogout owns the single outstanding expiry timer. It watches State
// transitions: an active session arms a timer for the remaining validity,
// an empty one cancels it. When the timer fires it invokes the logout
// callback exactly once; fires against a stale generation are dropped.
type AutoLogout struct {
	clk    clock.Clock
	logout func()

	mu    sync.Mutex
	gen   uint64
	timer clock.Timer
}

// NewAutoLogout creates an AutoLogout that calls logout when the active
// credential's validity window elapses.
func NewAutoLogout(clk clock.Clock, logout func()) *AutoLogout {
	return &AutoLogout{clk: clk, logout: logout}
}

// Watch subscribes to st and returns the unsubscribe func.
func (a *AutoLogout) Watch(st *State) func() {
	return st.Subscribe(a.onSession)
}

func (a *AutoLogout) onSession(s Session) {
	a.mu.Lock()
	// Every transition invalidates whatever was scheduled before it.
	a.gen++
	gen := a.gen
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}

	cred, ok := s.Credential()
	if !ok {
		a.mu.Unlock()
		return
	}

	remaining := cred.ExpiresAt.Sub(a.clk.Now())
	if remaining <= 0 {
		a.mu.Unlock()
		log.Debug().
			Time("expiresAt", cred.ExpiresAt).
			Msg("credential already expired, logging out")
		a.logout()
		return
	}

	a.timer = a.clk.AfterFunc(remaining, func() {
		a.fire(gen)
	})
	a.mu.Unlock()

	log.Debug().
		Dur("remaining", remaining).
		Time("expiresAt", cred.ExpiresAt).
		Msg("scheduled auto-logout")
}

func (a *AutoLogout) fire(gen uint64) {
	a.mu.Lock()
	if gen != a.gen {
		a.mu.Unlock()
		log.Debug().Uint64("gen", gen).Msg("dropping stale expiry timer")
		return
	}
	a.gen++
	a.timer = nil
	a.mu.Unlock()

	log.Info().Msg("session expired, logging out")
	a.logout()
}

// Stop cancels any outstanding timer. Idempotent; used at teardown.
func (a *AutoLogout) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
