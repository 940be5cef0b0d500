package store

import "sixcities/internal/offer"

// OffersState is the listing slice: the current city, the full offer
// collection, the favorites collection, and their request lifecycles.
// Version increments whenever either collection's contents change,
// which is what the memoized selectors key on.
type OffersState struct {
	City             string
	Offers           []offer.Offer
	Favorites        []offer.Offer
	Loading          RequestState
	FavoritesLoading RequestState
	Err              error
	Version          uint64
}

func initialOffersState() OffersState {
	return OffersState{City: offer.DefaultCity}
}

// reduceOffers applies listing transitions. The offer collection is
// only ever replaced wholesale, never merged; favorites stay consistent
// with the offer collection after every confirmed toggle.
func reduceOffers(s OffersState, a Action) OffersState {
	switch act := a.(type) {
	case ChangeCity:
		s.City = act.City

	case OffersRequested:
		s.Loading = Pending
		s.Err = nil

	case OffersLoaded:
		s.Offers = copyOffers(act.Offers)
		s.Loading = Succeeded
		s.Version++

	case OffersFailed:
		s.Loading = Failed
		s.Err = act.Err

	case FavoritesRequested:
		s.FavoritesLoading = Pending

	case FavoritesLoaded:
		s.Favorites = copyOffers(act.Offers)
		s.FavoritesLoading = Succeeded
		s.Version++

	case FavoritesFailed:
		s.FavoritesLoading = Failed
		s.Err = act.Err

	case FavoriteUpdated:
		s.Offers = replaceOffer(s.Offers, act.Offer)
		if act.Offer.IsFavorite {
			s.Favorites = upsertOffer(s.Favorites, act.Offer)
		} else {
			s.Favorites = removeOffer(s.Favorites, act.Offer.ID)
		}
		s.Version++
	}

	return s
}

func copyOffers(offers []offer.Offer) []offer.Offer {
	dup := make([]offer.Offer, len(offers))
	copy(dup, offers)
	return dup
}

// replaceOffer swaps the entry matching upd's id, if present. Returns
// a fresh slice so prior snapshots stay untouched.
func replaceOffer(offers []offer.Offer, upd offer.Offer) []offer.Offer {
	found := false
	for _, o := range offers {
		if o.ID == upd.ID {
			found = true
			break
		}
	}
	if !found {
		return offers
	}

	dup := copyOffers(offers)
	for i := range dup {
		if dup[i].ID == upd.ID {
			dup[i] = upd
		}
	}
	return dup
}

// upsertOffer replaces the matching entry or appends upd if absent,
// so an offer never appears twice.
func upsertOffer(offers []offer.Offer, upd offer.Offer) []offer.Offer {
	for _, o := range offers {
		if o.ID == upd.ID {
			return replaceOffer(offers, upd)
		}
	}
	dup := copyOffers(offers)
	return append(dup, upd)
}

func removeOffer(offers []offer.Offer, id string) []offer.Offer {
	dup := make([]offer.Offer, 0, len(offers))
	for _, o := range offers {
		if o.ID != id {
			dup = append(dup, o)
		}
	}
	return dup
}
