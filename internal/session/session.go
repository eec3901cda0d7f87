// Package session holds runtime state for the active viewer.
package session

import (
	"sync"

	"github.com/frudas24/swipedeck/internal/viewport"
)

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	InputEnabled  bool
	Viewport      viewport.Viewport
	CardIndex     int
	Lefts         int
	Rights        int
}

// Session holds runtime state for the active viewer.
type Session struct {
	mu            sync.RWMutex
	password      string
	authenticated bool
	inputEnabled  bool
	viewport      viewport.Viewport
	cardIndex     int
	lefts         int
	rights        int
}

// New returns an initialized session with the given password.
func New(password string) *Session {
	return &Session{
		password:     password,
		inputEnabled: true,
	}
}

// Authenticate validates the password and marks the session as authenticated.
func (s *Session) Authenticate(pass string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pass != "" && pass == s.password {
		s.authenticated = true
		return true
	}
	s.authenticated = false
	return false
}

// Logout clears authentication state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// SetInputEnabled toggles whether drag input drives the deck.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether drag input drives the deck.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// SetViewport stores the client-reported display geometry.
func (s *Session) SetViewport(v viewport.Viewport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = viewport.Normalize(v)
}

// Viewport returns the stored display geometry.
func (s *Session) Viewport() viewport.Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport
}

// RecordSwipeLeft counts a completed leftward dismissal and advances the deck.
func (s *Session) RecordSwipeLeft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lefts++
	s.cardIndex++
}

// RecordSwipeRight counts a completed rightward dismissal and advances the deck.
func (s *Session) RecordSwipeRight() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rights++
	s.cardIndex++
}

// CardIndex reports how many cards have been dismissed so far.
func (s *Session) CardIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cardIndex
}

// SwipeCounts reports the left and right dismissal tallies.
func (s *Session) SwipeCounts() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lefts, s.rights
}

// ResetDeck clears the card position and both tallies.
func (s *Session) ResetDeck() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cardIndex = 0
	s.lefts = 0
	s.rights = 0
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.authenticated,
		InputEnabled:  s.inputEnabled,
		Viewport:      s.viewport,
		CardIndex:     s.cardIndex,
		Lefts:         s.lefts,
		Rights:        s.rights,
	}
}
