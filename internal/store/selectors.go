package store

import (
	"sync"

	"sixcities/internal/offer"
)

// Selectors computes derived views over a store's state. CityOffers is
// memoized on the offers slice version and the current city, so
// unrelated state churn returns the cached result without refiltering.
type Selectors struct {
	store *Store

	mu          sync.Mutex
	cached      []offer.Offer
	cachedCity  string
	cachedVer   uint64
	cacheFilled bool
}

// NewSelectors creates selectors bound to a store.
func NewSelectors(s *Store) *Selectors {
	return &Selectors{store: s}
}

// CityOffers returns the offers whose city matches the current city.
func (s *Selectors) CityOffers() []offer.Offer {
	st := s.store.State().Offers

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cacheFilled && s.cachedVer == st.Version && s.cachedCity == st.City {
		return s.cached
	}

	filtered := make([]offer.Offer, 0, len(st.Offers))
	for _, o := range st.Offers {
		if o.City.Name == st.City {
			filtered = append(filtered, o)
		}
	}

	s.cached = filtered
	s.cachedCity = st.City
	s.cachedVer = st.Version
	s.cacheFilled = true
	return filtered
}

// FavoriteCount returns the number of favorited offers.
func (s *Selectors) FavoriteCount() int {
	return len(s.store.State().Offers.Favorites)
}

// Favorites returns the favorites collection.
func (s *Selectors) Favorites() []offer.Offer {
	return s.store.State().Offers.Favorites
}
