package store

import (
	"sixcities/internal/offer"
	"sixcities/internal/review"
	"sixcities/internal/user"
)

// Action is a typed message describing one state transition. All
// mutation goes through Store.Dispatch with one of the types below;
// there are no other ways to change state.
type Action interface {
	isAction()
}

// ChangeCity selects the current city for the offer listing.
type ChangeCity struct{ City string }

// OffersRequested marks the offer listing fetch as in flight.
type OffersRequested struct{}

// OffersLoaded replaces the offer listing wholesale.
type OffersLoaded struct{ Offers []offer.Offer }

// OffersFailed records a failed offer listing fetch.
type OffersFailed struct{ Err error }

// FavoritesRequested marks the favorites fetch as in flight.
type FavoritesRequested struct{}

// FavoritesLoaded replaces the favorites list wholesale.
type FavoritesLoaded struct{ Offers []offer.Offer }

// FavoritesFailed records a failed favorites fetch.
type FavoritesFailed struct{ Err error }

// FavoriteUpdated carries the server-confirmed offer after a favorite
// toggle. Dispatched only on success; there is no optimistic variant.
type FavoriteUpdated struct{ Offer offer.Offer }

// DetailRequested starts loading an offer's detail view. Requesting a
// different offer than the one currently held clears the stale detail,
// nearby and comment data first.
type DetailRequested struct{ ID string }

// DetailLoaded carries a fetched offer detail payload.
type DetailLoaded struct{ Offer offer.Offer }

// DetailFailed records a failed detail fetch. Fatal for the detail
// view; the caller redirects rather than retrying.
type DetailFailed struct {
	ID  string
	Err error
}

// NearbyLoaded carries the offers near the requested offer.
type NearbyLoaded struct {
	ID     string
	Offers []offer.Offer
}

// CommentsRequested marks the comment fetch for an offer as in flight.
type CommentsRequested struct{ ID string }

// CommentsLoaded replaces the comment list for the requested offer.
type CommentsLoaded struct {
	ID       string
	Comments []review.Comment
}

// CommentsFailed records a failed comment fetch.
type CommentsFailed struct {
	ID  string
	Err error
}

// CommentPosted appends a server-confirmed comment.
type CommentPosted struct{ Comment review.Comment }

// SessionChecking marks a session check or login as in flight.
type SessionChecking struct{}

// LoggedIn records a valid session with its profile.
type LoggedIn struct{ Profile user.Profile }

// LoggedOut records the end of a session, whether by logout or a
// failed session check.
type LoggedOut struct{}

// LoginFailed records a rejected login attempt.
type LoginFailed struct{ Err error }

func (ChangeCity) isAction()         {}
func (OffersRequested) isAction()    {}
func (OffersLoaded) isAction()       {}
func (OffersFailed) isAction()       {}
func (FavoritesRequested) isAction() {}
func (FavoritesLoaded) isAction()    {}
func (FavoritesFailed) isAction()    {}
func (FavoriteUpdated) isAction()    {}
func (DetailRequested) isAction()    {}
func (DetailLoaded) isAction()       {}
func (DetailFailed) isAction()       {}
func (NearbyLoaded) isAction()       {}
func (CommentsRequested) isAction()  {}
func (CommentsLoaded) isAction()     {}
func (CommentsFailed) isAction()     {}
func (CommentPosted) isAction()      {}
func (SessionChecking) isAction()    {}
func (LoggedIn) isAction()           {}
func (LoggedOut) isAction()          {}
func (LoginFailed) isAction()        {}
