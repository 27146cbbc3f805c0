package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/recipehub/recipectl/internal/app"
)

// RecipesCmd works with recipes on the server.
type RecipesCmd struct {
	List RecipesListCmd `cmd:"" help:"List your recipes"`
}

// RecipesListCmd lists the caller's recipes. Guarded.
type RecipesListCmd struct{}

func (r *RecipesListCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := app.New(globals.Config, "")
	if err != nil {
		return err
	}
	defer a.Close()

	if err := requireSession(a); err != nil {
		return err
	}

	recipes, err := a.Recipes.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}

	if len(recipes) == 0 {
		fmt.Println("No recipes found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSERVINGS\tUPDATED")
	for _, rec := range recipes {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			rec.ID, rec.Name, rec.Servings, rec.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
