package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailoring/internal/session"
)

// liveSession pairs a gap walk session with the user it belongs to.
// UserID is uuid.Nil for anonymous sessions.
type liveSession struct {
	sess   *session.Session
	userID uuid.UUID
}

// sessionStore is an in-memory registry of live gap walk sessions keyed
// by session ID. Sessions are server-local; restarting the process loses
// them, which is acceptable because the updated resume is persisted on
// finalize.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]liveSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]liveSession)}
}

func (s *sessionStore) put(sess *session.Session, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID()] = liveSession{sess: sess, userID: userID}
}

func (s *sessionStore) get(id string) (liveSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[id]
	return entry, ok
}

func (s *sessionStore) delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *sessionStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
