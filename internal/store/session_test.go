package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sixcities/internal/user"
)

func TestSessionStartsUnknown(t *testing.T) {
	s := New()
	st := s.State().Session

	assert.Equal(t, user.Unknown, st.Status)
	assert.Nil(t, st.Profile)
	assert.Equal(t, Idle, st.Loading)
}

func TestSessionCheckInFlightIsObservable(t *testing.T) {
	s := New()
	s.Dispatch(SessionChecking{})

	st := s.State().Session
	assert.Equal(t, user.Unknown, st.Status, "status settles only on a terminal action")
	assert.Equal(t, Pending, st.Loading)
}

func TestLoginSuccess(t *testing.T) {
	s := New()

	s.Dispatch(SessionChecking{})
	s.Dispatch(LoggedIn{Profile: user.Profile{Email: "a@b.com", Name: "Ann", Token: "T"}})

	st := s.State().Session
	assert.Equal(t, user.Auth, st.Status)
	require.NotNil(t, st.Profile)
	assert.Equal(t, "a@b.com", st.Profile.Email)
	assert.Equal(t, Succeeded, st.Loading)
}

func TestLoginFailure(t *testing.T) {
	s := New()

	s.Dispatch(SessionChecking{})
	s.Dispatch(LoginFailed{Err: errors.New("bad credentials")})

	st := s.State().Session
	assert.Equal(t, user.NoAuth, st.Status)
	assert.Nil(t, st.Profile)
	assert.Equal(t, Failed, st.Loading)
	assert.Error(t, st.Err)
}

func TestLogoutClearsProfile(t *testing.T) {
	s := New()
	s.Dispatch(LoggedIn{Profile: user.Profile{Email: "a@b.com"}})

	s.Dispatch(LoggedOut{})

	st := s.State().Session
	assert.Equal(t, user.NoAuth, st.Status)
	assert.Nil(t, st.Profile)
}

func TestFailedCheckAfterLoginEndsSession(t *testing.T) {
	s := New()
	s.Dispatch(LoggedIn{Profile: user.Profile{Email: "a@b.com"}})

	// A later session check rejecting the token transitions to NoAuth.
	s.Dispatch(SessionChecking{})
	s.Dispatch(LoggedOut{})

	st := s.State().Session
	assert.Equal(t, user.NoAuth, st.Status)
	assert.Nil(t, st.Profile)
}
