package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"sixcities/internal/api"
	"sixcities/internal/offer"
	"sixcities/internal/review"
)

// TokenStore persists the session token across runs.
type TokenStore interface {
	api.TokenSource
	Save(token string) error
	Clear() error
}

// Actions wraps API calls in dispatches: each method sends the
// requested action, performs the call, then sends the succeeded or
// failed action. Errors never reach state as raw values the view has
// to interpret; they land as slice flags or status transitions.
type Actions struct {
	api    *api.Client
	store  *Store
	tokens TokenStore
}

// NewActions creates action creators bound to a client, store and
// token store.
func NewActions(client *api.Client, store *Store, tokens TokenStore) *Actions {
	return &Actions{api: client, store: store, tokens: tokens}
}

// FetchOffers loads the full offer listing, replacing it wholesale.
func (a *Actions) FetchOffers(ctx context.Context) error {
	a.store.Dispatch(OffersRequested{})

	offers, err := a.api.Offers(ctx)
	if err != nil {
		a.store.Dispatch(OffersFailed{Err: err})
		return fmt.Errorf("fetching offers: %w", err)
	}

	a.store.Dispatch(OffersLoaded{Offers: offers})
	return nil
}

// FetchFavorites loads the favorites list, replacing it wholesale.
func (a *Actions) FetchFavorites(ctx context.Context) error {
	a.store.Dispatch(FavoritesRequested{})

	offers, err := a.api.Favorites(ctx)
	if err != nil {
		a.store.Dispatch(FavoritesFailed{Err: err})
		return fmt.Errorf("fetching favorites: %w", err)
	}

	a.store.Dispatch(FavoritesLoaded{Offers: offers})
	return nil
}

// ToggleFavorite sets an offer's favorite flag and applies the
// server-confirmed result. No optimistic update: on failure the state
// is left exactly as it was.
func (a *Actions) ToggleFavorite(ctx context.Context, id string, on bool) (*offer.Offer, error) {
	updated, err := a.api.SetFavorite(ctx, id, on)
	if err != nil {
		return nil, fmt.Errorf("updating favorite: %w", err)
	}

	a.store.Dispatch(FavoriteUpdated{Offer: *updated})
	return updated, nil
}

// OpenOffer loads an offer's detail view: detail, nearby offers and
// comments as three independent concurrent requests with no ordering
// guarantee. Only the detail fetch is fatal; nearby and comment
// failures leave their sections empty.
func (a *Actions) OpenOffer(ctx context.Context, id string) error {
	a.store.Dispatch(DetailRequested{ID: id})
	a.store.Dispatch(CommentsRequested{ID: id})

	var wg sync.WaitGroup
	var detailErr error

	wg.Add(3)
	go func() {
		defer wg.Done()
		o, err := a.api.Offer(ctx, id)
		if err != nil {
			a.store.Dispatch(DetailFailed{ID: id, Err: err})
			detailErr = err
			return
		}
		a.store.Dispatch(DetailLoaded{Offer: *o})
	}()
	go func() {
		defer wg.Done()
		nearby, err := a.api.Nearby(ctx, id)
		if err != nil {
			slog.Debug("nearby fetch failed", "offer", id, "error", err)
			return
		}
		a.store.Dispatch(NearbyLoaded{ID: id, Offers: nearby})
	}()
	go func() {
		defer wg.Done()
		comments, err := a.api.Comments(ctx, id)
		if err != nil {
			a.store.Dispatch(CommentsFailed{ID: id, Err: err})
			return
		}
		a.store.Dispatch(CommentsLoaded{ID: id, Comments: comments})
	}()
	wg.Wait()

	if detailErr != nil {
		return fmt.Errorf("fetching offer %s: %w", id, detailErr)
	}
	return nil
}

// PostComment validates and submits a review, appending the server's
// copy on success. On failure nothing changes and the caller keeps the
// draft.
func (a *Actions) PostComment(ctx context.Context, id string, draft review.Draft) (*review.Comment, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	comment, err := a.api.PostComment(ctx, id, draft)
	if err != nil {
		return nil, fmt.Errorf("posting review: %w", err)
	}

	a.store.Dispatch(CommentPosted{Comment: *comment})
	return comment, nil
}

// CheckSession asks the server whether the stored token is still
// valid. Any failure means "not authenticated": the token is cleared
// and the session ends, with nothing surfaced as an error.
func (a *Actions) CheckSession(ctx context.Context) {
	a.store.Dispatch(SessionChecking{})

	profile, err := a.api.CheckAuth(ctx)
	if err != nil {
		if cerr := a.tokens.Clear(); cerr != nil {
			slog.Warn("clearing stored token", "error", cerr)
		}
		a.store.Dispatch(LoggedOut{})
		return
	}

	a.store.Dispatch(LoggedIn{Profile: *profile})
}

// Login authenticates and persists the returned session token.
func (a *Actions) Login(ctx context.Context, email, password string) error {
	a.store.Dispatch(SessionChecking{})

	profile, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.store.Dispatch(LoginFailed{Err: err})
		return fmt.Errorf("logging in: %w", err)
	}

	if err := a.tokens.Save(profile.Token); err != nil {
		a.store.Dispatch(LoginFailed{Err: err})
		return fmt.Errorf("saving token: %w", err)
	}

	a.store.Dispatch(LoggedIn{Profile: *profile})
	return nil
}

// Logout ends the session. A server-side failure is treated the same
// as success so the user is never stranded logged-in locally.
func (a *Actions) Logout(ctx context.Context) error {
	a.store.Dispatch(SessionChecking{})

	if err := a.api.Logout(ctx); err != nil {
		slog.Warn("server logout failed, ending session locally", "error", err)
	}

	if err := a.tokens.Clear(); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}

	a.store.Dispatch(LoggedOut{})
	return nil
}
