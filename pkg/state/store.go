// pkg/state/store.go

// Package state provides a small reducer-pattern state container: actions
// are dispatched through a single root reducer and subscribers are notified
// after every state change. It backs client-side state trees that combine
// per-module reducers into one tree.
package state

import "sync"

// Action describes a state change request.
type Action struct {
	Type    string
	Payload any
}

// Reducer computes the next state for a module from the previous state and
// an action. Reducers must not mutate the previous state.
type Reducer func(state any, action Action) any

// StateTree is the root state produced by a combined reducer, keyed by
// module name.
type StateTree map[string]any

// CombineReducers folds per-module reducers into a single root reducer.
// Each module owns the subtree under its key.
func CombineReducers(reducers map[string]Reducer) Reducer {
	return func(state any, action Action) any {
		prev, _ := state.(StateTree)
		next := make(StateTree, len(reducers))
		for name, reduce := range reducers {
			var moduleState any
			if prev != nil {
				moduleState = prev[name]
			}
			next[name] = reduce(moduleState, action)
		}
		return next
	}
}

// Store holds the state tree and serializes dispatches.
type Store struct {
	mu          sync.RWMutex
	reducer     Reducer
	state       any
	subscribers map[int]func()
	nextSubID   int
	hook        func(Action, any)
}

// Option configures a Store.
type Option func(*Store)

// WithDispatchHook registers a function invoked after every dispatch with
// the action and the resulting state. It is the devtools attachment point.
func WithDispatchHook(hook func(action Action, state any)) Option {
	return func(s *Store) {
		s.hook = hook
	}
}

// NewStore creates a store and primes the state tree by dispatching an
// initialization action through the reducer.
func NewStore(reducer Reducer, opts ...Option) *Store {
	s := &Store{
		reducer:     reducer,
		subscribers: make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = reducer(nil, Action{Type: "@@INIT"})
	return s
}

// Dispatch runs the action through the reducer and notifies subscribers.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = s.reducer(s.state, action)
	state := s.state
	subs := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	hook := s.hook
	s.mu.Unlock()

	if hook != nil {
		hook(action, state)
	}
	for _, fn := range subs {
		fn()
	}
}

// GetState returns the current state tree.
func (s *Store) GetState() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a listener called after every dispatch and returns a
// function that removes it.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}
