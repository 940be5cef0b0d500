package store

import "sixcities/internal/user"

// SessionState is the auth slice: the current status, the profile when
// authenticated, and the lifecycle of the in-flight session request.
// Loading is distinct from Status so "check in progress" is observable.
type SessionState struct {
	Status  user.AuthStatus
	Profile *user.Profile
	Loading RequestState
	Err     error
}

func initialSessionState() SessionState {
	return SessionState{Status: user.Unknown}
}

// reduceSession applies session transitions. Status only ever moves
// through the defined action set: checking, logged in, logged out,
// login failed.
func reduceSession(s SessionState, a Action) SessionState {
	switch act := a.(type) {
	case SessionChecking:
		s.Loading = Pending
		s.Err = nil

	case LoggedIn:
		p := act.Profile
		s.Status = user.Auth
		s.Profile = &p
		s.Loading = Succeeded
		s.Err = nil

	case LoggedOut:
		s.Status = user.NoAuth
		s.Profile = nil
		s.Loading = Succeeded
		s.Err = nil

	case LoginFailed:
		s.Status = user.NoAuth
		s.Profile = nil
		s.Loading = Failed
		s.Err = act.Err
	}

	return s
}
