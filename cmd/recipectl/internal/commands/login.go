package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/recipehub/recipectl/internal/app"
	"github.com/recipehub/recipectl/internal/gateway"
)

// LoginCmd authenticates against RecipeHub and stores the session.
type LoginCmd struct {
	Email    string `help:"Account email" required:""`
	Password string `help:"Account password" required:"" env:"RECIPEHUB_PASSWORD"`
}

func (l *LoginCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := app.New(globals.Config, "")
	if err != nil {
		return err
	}
	defer a.Close()

	cred, err := a.Controller.Login(ctx, l.Email, l.Password)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrEmailNotFound):
			return fmt.Errorf("no account exists for %s", l.Email)
		case errors.Is(err, gateway.ErrInvalidCredential):
			return fmt.Errorf("incorrect password for %s", l.Email)
		}
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Printf("Logged in as %s (session valid until %s)\n",
		cred.Email, cred.ExpiresAt.Local().Format("15:04:05"))

	return nil
}

// SignupCmd creates a RecipeHub account and logs in.
type SignupCmd struct {
	Email    string `help:"Account email" required:""`
	Password string `help:"Account password" required:"" env:"RECIPEHUB_PASSWORD"`
}

func (s *SignupCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := app.New(globals.Config, "")
	if err != nil {
		return err
	}
	defer a.Close()

	cred, err := a.Controller.Signup(ctx, s.Email, s.Password)
	if err != nil {
		if errors.Is(err, gateway.ErrEmailAlreadyRegistered) {
			return fmt.Errorf("an account already exists for %s, try 'recipectl login'", s.Email)
		}
		return fmt.Errorf("signup failed: %w", err)
	}

	fmt.Printf("Account created, logged in as %s\n", cred.Email)

	return nil
}
