package sessions

import (
	"sync"
	"time"
)

// one visitor's interaction state. the only payload is the most
// recent successfully generated documentation
type Session struct {
	ID        string
	CreatedAt time.Time

	mu            sync.RWMutex
	lastActivity  time.Time
	documentation *string
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:           id,
		CreatedAt:    now,
		lastActivity: now,
	}
}

// overwrites the stored documentation
func (s *Session) SetDocumentation(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documentation = &text
	s.lastActivity = time.Now()
}

// returns the stored documentation and whether any was stored
func (s *Session) Documentation() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.documentation == nil {
		return "", false
	}

	return *s.documentation, true
}

// updates the last activity time
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = time.Now()
}

func (s *Session) LastActivity() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActivity
}
