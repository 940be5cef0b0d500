package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sixcities/internal/offer"
	"sixcities/internal/review"
)

func testComment(id, text string) review.Comment {
	return review.Comment{
		ID:      id,
		Comment: text,
		Rating:  4,
		User:    review.Author{Name: "Ann"},
		Date:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestDetailLifecycle(t *testing.T) {
	s := New()

	s.Dispatch(DetailRequested{ID: "1"})
	st := s.State().Detail
	assert.Equal(t, "1", st.RequestedID)
	assert.Equal(t, Pending, st.Loading)
	assert.Nil(t, st.Current)

	s.Dispatch(DetailLoaded{Offer: parisOffer("1")})
	st = s.State().Detail
	require.NotNil(t, st.Current)
	assert.Equal(t, "1", st.Current.ID)
	assert.Equal(t, Succeeded, st.Loading)
}

func TestDetailFailureIsFatal(t *testing.T) {
	s := New()

	s.Dispatch(DetailRequested{ID: "404"})
	s.Dispatch(DetailFailed{ID: "404", Err: errors.New("not found")})

	st := s.State().Detail
	assert.Equal(t, Failed, st.Loading)
	assert.Nil(t, st.Current)
	assert.Error(t, st.Err)
}

func TestSwitchingOffersClearsStaleData(t *testing.T) {
	s := New()

	s.Dispatch(DetailRequested{ID: "1"})
	s.Dispatch(DetailLoaded{Offer: parisOffer("1")})
	s.Dispatch(NearbyLoaded{ID: "1", Offers: []offer.Offer{parisOffer("5")}})
	s.Dispatch(CommentsLoaded{ID: "1", Comments: []review.Comment{testComment("c1", "great")}})

	// Requesting a different offer clears everything before new data
	// arrives.
	s.Dispatch(DetailRequested{ID: "2"})
	st := s.State().Detail
	assert.Nil(t, st.Current)
	assert.Empty(t, st.Nearby)
	assert.Empty(t, st.Comments)
	assert.Equal(t, "2", st.RequestedID)
	assert.Equal(t, Pending, st.Loading)
}

func TestLateResponseForAbandonedOfferIsDropped(t *testing.T) {
	s := New()

	// User opens offer 1, then switches to offer 2 before 1 resolves.
	s.Dispatch(DetailRequested{ID: "1"})
	s.Dispatch(DetailRequested{ID: "2"})

	// Offer 1's responses arrive late.
	s.Dispatch(DetailLoaded{Offer: parisOffer("1")})
	s.Dispatch(NearbyLoaded{ID: "1", Offers: []offer.Offer{parisOffer("5")}})
	s.Dispatch(CommentsLoaded{ID: "1", Comments: []review.Comment{testComment("c1", "stale")}})
	s.Dispatch(DetailFailed{ID: "1", Err: errors.New("late failure")})

	st := s.State().Detail
	assert.Nil(t, st.Current, "stale payload must not land")
	assert.Empty(t, st.Nearby)
	assert.Empty(t, st.Comments)
	assert.Equal(t, Pending, st.Loading, "late failure for old id must not settle the new request")

	// Offer 2's data arrives and lands normally — never a mix of 1 and 2.
	s.Dispatch(DetailLoaded{Offer: cologneOffer("2")})
	st = s.State().Detail
	require.NotNil(t, st.Current)
	assert.Equal(t, "2", st.Current.ID)
	assert.Equal(t, "Cologne", st.Current.City.Name)
}

func TestReRequestingSameOfferKeepsData(t *testing.T) {
	s := New()

	s.Dispatch(DetailRequested{ID: "1"})
	s.Dispatch(DetailLoaded{Offer: parisOffer("1")})
	s.Dispatch(CommentsLoaded{ID: "1", Comments: []review.Comment{testComment("c1", "keep me")}})

	s.Dispatch(DetailRequested{ID: "1"})
	st := s.State().Detail
	require.NotNil(t, st.Current, "same-id reload keeps current data visible")
	assert.Len(t, st.Comments, 1)
	assert.Equal(t, Pending, st.Loading)
}

func TestCommentsLifecycle(t *testing.T) {
	s := New()

	s.Dispatch(DetailRequested{ID: "1"})
	s.Dispatch(CommentsRequested{ID: "1"})
	assert.Equal(t, Pending, s.State().Detail.CommentsLoading)

	s.Dispatch(CommentsFailed{ID: "1", Err: errors.New("boom")})
	assert.Equal(t, Failed, s.State().Detail.CommentsLoading)
}

func TestCommentPostedAppendsAtEnd(t *testing.T) {
	s := New()

	s.Dispatch(DetailRequested{ID: "1"})
	s.Dispatch(CommentsLoaded{ID: "1", Comments: []review.Comment{
		testComment("c1", "first"),
		testComment("c2", "second"),
	}})

	posted := testComment("c3", "just posted")
	s.Dispatch(CommentPosted{Comment: posted})

	comments := s.State().Detail.Comments
	require.Len(t, comments, 3)
	assert.Equal(t, "c3", comments[2].ID, "new comment appended at the end")
	assert.Equal(t, posted, comments[2], "appended entry matches the echoed payload verbatim")
}

func TestFavoriteUpdateTouchesCurrentAndNearby(t *testing.T) {
	s := New()

	s.Dispatch(DetailRequested{ID: "1"})
	s.Dispatch(DetailLoaded{Offer: parisOffer("1")})
	s.Dispatch(NearbyLoaded{ID: "1", Offers: []offer.Offer{parisOffer("5"), parisOffer("6")}})

	upd := parisOffer("1")
	upd.IsFavorite = true
	s.Dispatch(FavoriteUpdated{Offer: upd})

	st := s.State().Detail
	require.NotNil(t, st.Current)
	assert.True(t, st.Current.IsFavorite)

	updNearby := parisOffer("6")
	updNearby.IsFavorite = true
	s.Dispatch(FavoriteUpdated{Offer: updNearby})

	st = s.State().Detail
	assert.False(t, st.Nearby[0].IsFavorite)
	assert.True(t, st.Nearby[1].IsFavorite)
}
