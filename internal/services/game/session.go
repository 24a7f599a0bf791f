package game

import (
	"sync"
	"time"
)

// session owns the round of one chat channel. mu serializes every
// operation on the session, including score writes and word draws.
type session struct {
	mu           sync.Mutex
	id           string
	round        round
	lastActivity time.Time
}

// getSession returns the session for a channel, creating it on first use
func (s *service) getSession(sessionID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{
			id:           sessionID,
			lastActivity: s.clock.Now(),
		}
		s.sessions[sessionID] = sess
	}
	return sess
}

// touch records activity; callers hold sess.mu
func (sess *session) touch(at time.Time) {
	if at.After(sess.lastActivity) {
		sess.lastActivity = at
	}
}
