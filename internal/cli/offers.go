package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"sixcities/internal/cache"
	"sixcities/internal/offer"
	"sixcities/internal/store"
)

func newOffersCmd() *cobra.Command {
	var city string
	var sortName string
	var offline bool

	cmd := &cobra.Command{
		Use:   "offers",
		Short: "List offers in the current city",
		Long:  "List rental offers, filtered to one city and optionally sorted. With --offline, browses the last fetched snapshot without a network.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOffers(cmd, city, sortName, offline)
		},
	}

	cmd.Flags().StringVar(&city, "city", offer.DefaultCity, "city to browse")
	cmd.Flags().StringVar(&sortName, "sort", string(offer.SortPopular), "sort order (popular|price-asc|price-desc|top-rated)")
	cmd.Flags().BoolVar(&offline, "offline", false, "use the cached snapshot instead of the network")

	return cmd
}

func runOffers(cmd *cobra.Command, city, sortName string, offline bool) error {
	if !offer.ValidCity(city) {
		return fmt.Errorf("unknown city %q (one of: %v)", city, offer.Cities)
	}
	sortType, err := offer.ParseSort(sortName)
	if err != nil {
		return err
	}

	app := newApp()
	app.store.Dispatch(store.ChangeCity{City: city})

	if offline {
		if err := loadOffersFromCache(app); err != nil {
			return err
		}
	} else {
		if err := app.actions.FetchOffers(cmd.Context()); err != nil {
			return err
		}
		saveOffersToCache(app)
	}

	offers := offer.Sort(app.selectors.CityOffers(), sortType)

	if isJSON() {
		return printJSON(offers)
	}
	return printOfferTable(city, offers)
}

// loadOffersFromCache feeds the cached snapshot through the normal
// store path so the selectors apply unchanged.
func loadOffersFromCache(app *app) error {
	path, err := cache.DefaultPath()
	if err != nil {
		return err
	}
	c, err := cache.Open(path)
	if err != nil {
		return fmt.Errorf("opening offline cache: %w", err)
	}
	defer closeCache(c)

	offers, err := c.Offers()
	if err != nil {
		return fmt.Errorf("reading offline cache: %w", err)
	}
	if len(offers) == 0 {
		return fmt.Errorf("offline cache is empty; run 'six offers' online first")
	}

	app.store.Dispatch(store.OffersLoaded{Offers: offers})
	return nil
}

// saveOffersToCache refreshes the offline snapshot. Best effort: a
// cache failure never fails the command.
func saveOffersToCache(app *app) {
	path, err := cache.DefaultPath()
	if err != nil {
		slog.Warn("locating offline cache", "error", err)
		return
	}
	c, err := cache.Open(path)
	if err != nil {
		slog.Warn("opening offline cache", "error", err)
		return
	}
	defer closeCache(c)

	if err := c.ReplaceOffers(app.store.State().Offers.Offers); err != nil {
		slog.Warn("updating offline cache", "error", err)
	}
}

func closeCache(c *cache.Cache) {
	if err := c.Close(); err != nil {
		slog.Warn("closing offline cache", "error", err)
	}
}
