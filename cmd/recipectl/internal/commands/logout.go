package commands

import (
	"context"
	"fmt"

	"github.com/recipehub/recipectl/internal/app"
)

// LogoutCmd clears the session and its persisted mirror.
type LogoutCmd struct{}

func (l *LogoutCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := app.New(globals.Config, "")
	if err != nil {
		return err
	}
	defer a.Close()

	a.Controller.Logout()

	fmt.Println("Logged out.")
	return nil
}
