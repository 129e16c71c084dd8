package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTTL             = 24 * time.Hour
	DefaultCleanupInterval = 5 * time.Minute
)

// manages visitor sessions in memory
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
}

// returns a new session manager; sessions idle longer than ttl expire
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// creates a new empty session
func (m *Manager) Create() *Session {
	session := newSession(uuid.NewString(), m.now())

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	return session
}

// retrieves a live session by ID
func (m *Manager) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	m.mu.RLock()
	session, exists := m.sessions[id]
	m.mu.RUnlock()

	if !exists || m.expired(session) {
		return nil, ErrSessionNotFound
	}

	session.Touch()
	return session, nil
}

// returns the session for id, or a fresh one when id is empty,
// malformed or expired. created reports which happened
func (m *Manager) Resolve(id string) (session *Session, created bool) {
	if id != "" {
		if s, err := m.Get(id); err == nil {
			return s, false
		}
	}

	return m.Create(), true
}

// removes a session
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// returns the number of tracked sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// removes expired sessions and returns how many were dropped
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, session := range m.sessions {
		if m.expired(session) {
			delete(m.sessions, id)
			removed++
		}
	}

	return removed
}

// sweeps periodically until ctx is done
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Sweep()
		}
	}
}

func (m *Manager) expired(s *Session) bool {
	return m.now().Sub(s.LastActivity()) > m.ttl
}
