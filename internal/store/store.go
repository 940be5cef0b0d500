// Package store holds application state and the transitions over it.
//
// State is partitioned into three independently-reduced slices:
// session, offers and detail. Reducers are pure functions over value
// copies, so a State snapshot handed out by State() is never mutated
// behind the caller's back.
package store

import "sync"

// RequestState tracks the lifecycle of one request kind. Using a
// single enum instead of paired loading/error booleans keeps invalid
// combinations unrepresentable.
type RequestState int

const (
	Idle RequestState = iota
	Pending
	Succeeded
	Failed
)

func (r RequestState) String() string {
	switch r {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// State is the full application state.
type State struct {
	Session SessionState
	Offers  OffersState
	Detail  DetailState
}

// Store is the state container. All access is through Dispatch and
// State; there are no ambient globals.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  []func(State)
}

// New creates a store with initial state: unknown session, the default
// city selected, nothing loaded.
func New() *Store {
	return &Store{
		state: State{
			Session: initialSessionState(),
			Offers:  initialOffersState(),
			Detail:  initialDetailState(),
		},
	}
}

// Dispatch runs every slice reducer over the action and notifies
// subscribers with the resulting state.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = State{
		Session: reduceSession(s.state.Session, a),
		Offers:  reduceOffers(s.state.Offers, a),
		Detail:  reduceDetail(s.state.Detail, a),
	}
	next := s.state
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to run after every dispatch.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
