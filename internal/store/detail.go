package store

import (
	"sixcities/internal/offer"
	"sixcities/internal/review"
)

// DetailState is the offer-detail slice: the current offer, offers
// near it, its comments, and the request lifecycles. RequestedID pins
// which offer the slice is about; payloads for any other id are stale
// and get dropped.
type DetailState struct {
	RequestedID     string
	Current         *offer.Offer
	Nearby          []offer.Offer
	Comments        []review.Comment
	Loading         RequestState
	CommentsLoading RequestState
	Err             error
}

func initialDetailState() DetailState {
	return DetailState{}
}

// reduceDetail applies detail-view transitions. Switching to a new
// offer clears the previous offer's data before anything loads, and a
// late response for an abandoned id is validated against the payload's
// own id so it can never overwrite the current offer.
func reduceDetail(s DetailState, a Action) DetailState {
	switch act := a.(type) {
	case DetailRequested:
		if act.ID != s.RequestedID {
			s.Current = nil
			s.Nearby = nil
			s.Comments = nil
			s.CommentsLoading = Idle
		}
		s.RequestedID = act.ID
		s.Loading = Pending
		s.Err = nil

	case DetailLoaded:
		if act.Offer.ID != s.RequestedID {
			return s
		}
		o := act.Offer
		s.Current = &o
		s.Loading = Succeeded
		s.Err = nil

	case DetailFailed:
		if act.ID != s.RequestedID {
			return s
		}
		s.Current = nil
		s.Loading = Failed
		s.Err = act.Err

	case NearbyLoaded:
		if act.ID != s.RequestedID {
			return s
		}
		s.Nearby = copyOffers(act.Offers)

	case CommentsRequested:
		if act.ID != s.RequestedID {
			return s
		}
		s.CommentsLoading = Pending

	case CommentsLoaded:
		if act.ID != s.RequestedID {
			return s
		}
		s.Comments = copyComments(act.Comments)
		s.CommentsLoading = Succeeded

	case CommentsFailed:
		if act.ID != s.RequestedID {
			return s
		}
		s.CommentsLoading = Failed

	case CommentPosted:
		dup := copyComments(s.Comments)
		s.Comments = append(dup, act.Comment)

	case FavoriteUpdated:
		if s.Current != nil && s.Current.ID == act.Offer.ID {
			o := act.Offer
			s.Current = &o
		}
		s.Nearby = replaceOffer(s.Nearby, act.Offer)
	}

	return s
}

func copyComments(comments []review.Comment) []review.Comment {
	dup := make([]review.Comment, len(comments))
	copy(dup, comments)
	return dup
}
