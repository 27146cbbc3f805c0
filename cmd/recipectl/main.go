package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/recipehub/recipectl/cmd/recipectl/internal/commands"
	"github.com/recipehub/recipectl/internal/config"
	"github.com/recipehub/recipectl/internal/logger"
)

var (
	version = "dev"
	cli     struct {
		Login   commands.LoginCmd   `cmd:"" help:"Log in to RecipeHub"`
		Signup  commands.SignupCmd  `cmd:"" help:"Create a RecipeHub account"`
		Logout  commands.LogoutCmd  `cmd:"" help:"Log out and clear the stored session"`
		Whoami  commands.WhoamiCmd  `cmd:"" help:"Show the authenticated user"`
		Status  commands.StatusCmd  `cmd:"" help:"Show session status"`
		Recipes commands.RecipesCmd `cmd:"" help:"Work with recipes"`
		Token   commands.TokenCmd   `cmd:"" help:"Print the stored bearer token"`
		Config  string              `help:"Path to config file" type:"path"`
		Debug   bool                `help:"Enable debug mode."`
		Version kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))

	logger.Setup(cli.Debug)

	cfg, err := config.Load(cli.Config)
	cmd.FatalIfErrorf(err)

	err = cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version, Config: cfg})
	cmd.FatalIfErrorf(err)
}
