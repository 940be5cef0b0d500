package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sixcities/internal/guard"
	"sixcities/internal/offer"
	"sixcities/internal/store"
)

func newFavoritesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List your favorited offers",
		Long:  "List the offers you have favorited, grouped by city. Requires login.",
		Args:  cobra.NoArgs,
		RunE:  runFavorites,
	}
}

func runFavorites(cmd *cobra.Command, args []string) error {
	app := newApp()

	if err := requireAuth(cmd.Context(), app); err != nil {
		return err
	}

	if err := app.actions.FetchFavorites(cmd.Context()); err != nil {
		return err
	}

	favorites := app.selectors.Favorites()

	if isJSON() {
		return printJSON(favorites)
	}

	if len(favorites) == 0 {
		fmt.Println("Nothing saved yet.")
		return nil
	}

	fmt.Printf("Saved listing (%d):\n\n", app.selectors.FavoriteCount())
	for _, city := range offer.Cities {
		var group []offer.Offer
		for _, o := range favorites {
			if o.City.Name == city {
				group = append(group, o)
			}
		}
		if len(group) == 0 {
			continue
		}
		fmt.Printf("%s:\n", city)
		for _, o := range group {
			fmt.Printf("  %s  %s, €%d/night, %s\n", o.ID, o.Title, o.Price, formatRating(o.Rating))
		}
		fmt.Println()
	}

	return nil
}

// requireAuth runs a session check and refuses when the guard denies.
// The store's pending flag feeds the guard so an Unknown status only
// passes while the check is actually in flight.
func requireAuth(ctx context.Context, app *app) error {
	app.actions.CheckSession(ctx)

	session := app.store.State().Session
	if !guard.Allow(session.Status, session.Loading == store.Pending) {
		return fmt.Errorf("not logged in; run 'six login' first")
	}
	return nil
}
