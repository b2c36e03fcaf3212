// Package agent drives the conversation: session histories and the
// dispatch loop between the model and the domain operations.
package agent

import (
	"sync"

	"github.com/pitstopd/pitstop/internal/domain"
)

// SessionStore keeps one bounded message history per session id. Each
// session is an independent sequence; its lock serializes turns so
// concurrent requests for the same session cannot interleave.
type SessionStore struct {
	mu       sync.Mutex
	limit    int
	sessions map[string]*session
}

type session struct {
	mu       sync.Mutex
	limit    int
	messages []domain.Message
}

// NewSessionStore creates a session store. Histories are trimmed FIFO
// past limit messages.
func NewSessionStore(limit int) *SessionStore {
	return &SessionStore{
		limit:    limit,
		sessions: make(map[string]*session),
	}
}

// get returns the session for the id, creating it if needed.
func (s *SessionStore) get(id string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{limit: s.limit}
		s.sessions[id] = sess
	}
	return sess
}

// History returns a copy of the session's message history. Unknown
// sessions yield an empty history.
func (s *SessionStore) History(id string) []domain.Message {
	sess := s.get(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot()
}

// Clear resets a session's history to empty.
func (s *SessionStore) Clear(id string) {
	sess := s.get(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.messages = nil
}

// snapshot copies the messages. Caller holds sess.mu.
func (sess *session) snapshot() []domain.Message {
	out := make([]domain.Message, len(sess.messages))
	copy(out, sess.messages)
	return out
}

// append commits messages, dropping the oldest past the cap. Caller
// holds sess.mu.
func (sess *session) append(msgs ...domain.Message) {
	sess.messages = append(sess.messages, msgs...)
	if over := len(sess.messages) - sess.limit; over > 0 {
		sess.messages = sess.messages[over:]
	}
}
