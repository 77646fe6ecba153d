// Package session holds runtime state for the remote consumer.
package session

import (
	"crypto/subtle"
	"sync"
)

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	InputEnabled  bool
	ConsumerID    string
	TransportRTC  bool
}

// Session holds runtime state for the remote consumer.
type Session struct {
	mu            sync.RWMutex
	password      string
	authenticated bool
	inputEnabled  bool
	consumerID    string
	transportRTC  bool
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
	if pass != "" && subtle.ConstantTimeCompare([]byte(pass), []byte(s.password)) == 1 {
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

// SetInputEnabled toggles whether remote clicks and wheel input are replayed on the host.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether remote clicks and wheel input are replayed on the host.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// SetConsumer records the id of the connected control consumer; empty clears it.
func (s *Session) SetConsumer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consumerID = id
}

// Consumer returns the connected consumer id.
func (s *Session) Consumer() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.consumerID
}

// SetTransportRTC records whether a WebRTC data channel is carrying events.
func (s *Session) SetTransportRTC(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transportRTC = open
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.authenticated,
		InputEnabled:  s.inputEnabled,
		ConsumerID:    s.consumerID,
		TransportRTC:  s.transportRTC,
	}
}
