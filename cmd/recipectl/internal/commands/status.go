package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/recipehub/recipectl/internal/app"
)

// StatusCmd shows the current session state. Never guarded.
type StatusCmd struct{}

func (s *StatusCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := app.New(globals.Config, "")
	if err != nil {
		return err
	}
	defer a.Close()

	now := a.Clock.Now()
	sess := a.State.Current()

	cred, ok := sess.Credential()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}

	if !sess.Valid(now) {
		fmt.Printf("Session for %s expired at %s.\n", cred.Email, cred.ExpiresAt.Local().Format(time.RFC3339))
		return nil
	}

	fmt.Printf("Logged in as %s, session expires in %s.\n",
		cred.Email, cred.ExpiresAt.Sub(now).Round(time.Second))

	return nil
}

// WhoamiCmd prints the authenticated user. Guarded.
type WhoamiCmd struct{}

func (w *WhoamiCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := app.New(globals.Config, "")
	if err != nil {
		return err
	}
	defer a.Close()

	if err := requireSession(a); err != nil {
		return err
	}

	cred, _ := a.State.Current().Credential()
	fmt.Printf("%s (%s)\n", cred.Email, cred.UserID)

	return nil
}
