package chat

import (
	"sync"

	"github.com/google/uuid"
)

// Session holds one conversation: its state, partially collected draft and
// transcript. The engine locks a session for the full handling of one
// message, so each session is strictly sequential while independent
// sessions proceed in parallel.
type Session struct {
	ID string

	mu       sync.Mutex
	State    State
	Draft    Draft
	Messages []Message
}

// CurrentState reads the session state under the session lock.
func (s *Session) CurrentState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.State
}

// reset returns the session to idle with an empty draft. The transcript is
// kept for the lifetime of the session. Callers must hold the session lock.
func (s *Session) reset() {
	s.State = StateIdle
	s.Draft = Draft{}
}

// Manager tracks the sessions of all connected users.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Get returns the session with the given ID, creating it if needed. An
// empty ID creates a fresh session with a new identifier.
func (m *Manager) Get(id string) *Session {
	if id == "" {
		id = uuid.New().String()
	}

	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return sess
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[id]; ok {
		return sess
	}
	sess = &Session{ID: id, State: StateIdle}
	m.sessions[id] = sess
	return sess
}
