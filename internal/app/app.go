// Package app wires the session manager and its consumers together for
// the CLI process.
package app

import (
	"fmt"

	"github.com/recipehub/recipectl/internal/api"
	"github.com/recipehub/recipectl/internal/clock"
	"github.com/recipehub/recipectl/internal/config"
	"github.com/recipehub/recipectl/internal/gateway"
	"github.com/recipehub/recipectl/internal/guard"
	"github.com/recipehub/recipectl/internal/session"
	"github.com/recipehub/recipectl/internal/transport"
)

// App owns the process-wide session state and everything reading from it.
// Construct once at startup; Close cancels the expiry timer.
type App struct {
	Config     config.Config
	Clock      clock.Clock
	State      *session.State
	Controller *session.Controller
	Guard      *guard.Guard
	Recipes    *api.Client

	autoLogout *session.AutoLogout
	unwatch    func()
}

// New builds the session manager and attempts auto-login from the durable
// store. sessionPath overrides the session file location (for tests);
// empty uses the default under the user's home directory.
func New(cfg config.Config, sessionPath string) (*App, error) {
	clk := clock.New()
	state := session.NewState()

	store, err := session.NewFileStore(sessionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	gw := gateway.NewClient(gateway.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.RequestTimeout,
	})

	ctrl := session.NewController(gw, state, store, clk)

	autoLogout := session.NewAutoLogout(clk, ctrl.Logout)
	unwatch := autoLogout.Watch(state)

	// Restoring a persisted session arms the expiry timer for the
	// remaining duration through the subscription above.
	ctrl.AutoLogin()

	httpc := transport.NewHTTPClient(state, clk, cfg.CacheDir, cfg.RequestTimeout)

	return &App{
		Config:     cfg,
		Clock:      clk,
		State:      state,
		Controller: ctrl,
		Guard:      guard.New(state, clk, cfg.LoginRedirect),
		Recipes:    api.NewClient(cfg.APIURL, httpc),
		autoLogout: autoLogout,
		unwatch:    unwatch,
	}, nil
}

// Close releases the app's only held resource, the expiry timer.
func (a *App) Close() {
	a.unwatch()
	a.autoLogout.Stop()
}
