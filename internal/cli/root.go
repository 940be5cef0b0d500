// Package cli defines the cobra command tree for the six-cities client.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sixcities/internal/api"
	"sixcities/internal/logging"
	"sixcities/internal/store"
)

var (
	flagFormat  string
	flagServer  string
	flagVerbose bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "six",
		Short:         "Browse six-cities rental offers",
		Long:          "A client for the six-cities rental listings. Browse offers by city, view details and reviews, keep a favorites list, and post reviews.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env values feed the SIX_* overrides; absence is fine.
			_ = godotenv.Load()
			logging.Setup(flagVerbose)
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "server URL (default: from config)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	root.AddCommand(
		newOffersCmd(),
		newCitiesCmd(),
		newShowCmd(),
		newFavoritesCmd(),
		newFavoriteCmd(),
		newReviewCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// app bundles the store, its selectors and the async actions one
// command invocation works with.
type app struct {
	store     *store.Store
	selectors *store.Selectors
	actions   *store.Actions
}

// newApp wires a fresh store to the API client and the persisted
// token.
func newApp() *app {
	tokens := configTokens{}
	client := api.New(getServerURL(), tokens)
	st := store.New()
	return &app{
		store:     st,
		selectors: store.NewSelectors(st),
		actions:   store.NewActions(client, st, tokens),
	}
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
