package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFavoriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <offer-id> <on|off>",
		Short: "Add or remove an offer from favorites",
		Long:  "Set the favorite flag on an offer. The change applies only after the server confirms it. Requires login.",
		Args:  cobra.ExactArgs(2),
		RunE:  runFavorite,
	}
}

func runFavorite(cmd *cobra.Command, args []string) error {
	id := args[0]

	var on bool
	switch args[1] {
	case "on":
		on = true
	case "off":
		on = false
	default:
		return fmt.Errorf("status must be 'on' or 'off', got %q", args[1])
	}

	app := newApp()

	if err := requireAuth(cmd.Context(), app); err != nil {
		return err
	}

	updated, err := app.actions.ToggleFavorite(cmd.Context(), id, on)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(updated)
	}

	if updated.IsFavorite {
		fmt.Printf("✓ %s added to favorites.\n", updated.Title)
	} else {
		fmt.Printf("✓ %s removed from favorites.\n", updated.Title)
	}
	return nil
}
