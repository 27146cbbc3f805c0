package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/golang-jwt/jwt/v5"

	"github.com/recipehub/recipectl/internal/app"
)

// TokenCmd prints the stored bearer token. Guarded.
type TokenCmd struct {
	Claims bool `help:"Decode and print the token's JWT claims instead of the raw token"`
}

func (t *TokenCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := app.New(globals.Config, "")
	if err != nil {
		return err
	}
	defer a.Close()

	if err := requireSession(a); err != nil {
		return err
	}

	cred, _ := a.State.Current().Credential()

	if !t.Claims {
		fmt.Println(cred.Token)
		return nil
	}

	// Display only; the client has no verification key and the server is
	// the sole authority on token validity.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(cred.Token, claims); err != nil {
		return fmt.Errorf("stored token is not a JWT: %w", err)
	}

	keys := make([]string, 0, len(claims))
	for k := range claims {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("%s: %v\n", k, claims[k])
	}

	return nil
}
