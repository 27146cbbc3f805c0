package commands

import (
	"fmt"

	"github.com/recipehub/recipectl/internal/app"
	"github.com/recipehub/recipectl/internal/config"
)

type Globals struct {
	Debug   bool
	Version string
	Config  config.Config
}

// requireSession gates protected commands on the access guard. A denied
// check surfaces the configured redirect destination as a login hint.
func requireSession(a *app.App) error {
	decision := a.Guard.Check()
	if decision.Allowed() {
		return nil
	}
	target, _ := decision.Redirect()
	return fmt.Errorf("not logged in, run 'recipectl login' (%s)", target)
}
