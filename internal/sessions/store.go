package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds the open swap session of each user. Opening a session while
// one exists closes the old one first, so a reopened dialog always starts
// from a clean state.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	toggleSwapAt time.Duration
	toggleSettle time.Duration
}

// NewStore creates an empty session store with the given toggle timings.
func NewStore(toggleSwapAt, toggleSettle time.Duration) *Store {
	return &Store{
		sessions:     make(map[uuid.UUID]*Session),
		toggleSwapAt: toggleSwapAt,
		toggleSettle: toggleSettle,
	}
}

// Open creates a fresh session for the user, closing any existing one.
func (st *Store) Open(userID uuid.UUID) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if old, ok := st.sessions[userID]; ok {
		old.Close()
	}
	s := New(userID, WithToggleTiming(st.toggleSwapAt, st.toggleSettle))
	st.sessions[userID] = s
	return s
}

// Get returns the user's open session, if any.
func (st *Store) Get(userID uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[userID]
	return s, ok
}

// Close tears down and removes the user's session. It reports whether a
// session existed.
func (st *Store) Close(userID uuid.UUID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[userID]
	if !ok {
		return false
	}
	s.Close()
	delete(st.sessions, userID)
	return true
}
