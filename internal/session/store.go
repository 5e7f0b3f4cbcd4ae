package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/cryptochart/internal/service"
)

// Session is one browser's chart session.
//
// The asset directory memo is created with the session, so each session
// sees the directory as fetched at its start.
type Session struct {
	ID        string
	Directory *service.DirectoryMemo
	CreatedAt time.Time

	mu       sync.Mutex
	state    State
	lastSeen time.Time
}

// State returns a copy of the committed selection.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Commit replaces the selection. Call it only after a successful render.
func (s *Session) Commit(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Store keeps sessions in memory, keyed by an opaque id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	clock    Clock
	newMemo  func() *service.DirectoryMemo
}

// NewStore creates a store that evicts sessions idle for longer than ttl.
// newMemo builds the directory memo of every new session.
func NewStore(ttl time.Duration, clock Clock, newMemo func() *service.DirectoryMemo) *Store {
	if clock == nil {
		clock = NewRealClock()
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		clock:    clock,
		newMemo:  newMemo,
	}
}

// Today is the current calendar day according to the store's clock.
func (st *Store) Today() time.Time {
	return st.clock.Now()
}

// Get returns a live session and refreshes its idle timer.
func (st *Store) Get(id string) (*Session, bool) {
	now := st.clock.Now()

	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	if st.expired(s, now) {
		delete(st.sessions, id)
		return nil, false
	}
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
	return s, true
}

// Create starts a new session with the default selection and evicts
// sessions that went idle.
func (st *Store) Create() *Session {
	now := st.clock.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Directory: st.newMemo(),
		CreatedAt: now,
		state:     State{Range: DefaultRange(now)},
		lastSeen:  now,
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	for id, old := range st.sessions {
		if st.expired(old, now) {
			delete(st.sessions, id)
		}
	}
	st.sessions[s.ID] = s
	return s
}

// Len reports how many sessions are stored.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) expired(s *Session, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return st.ttl > 0 && now.Sub(s.lastSeen) > st.ttl
}
