package contact

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amamam1231/ai-project-312/domain/i18n"
)

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Store keeps one Controller per visitor form session.
type Store struct {
	newController func(i18n.Messages) *Controller
	ttl           time.Duration
	now           func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func NewStore(ttl time.Duration, newController func(i18n.Messages) *Controller) *Store {
	return &Store{
		newController: newController,
		ttl:           ttl,
		now:           time.Now,
		sessions:      make(map[string]*session),
	}
}

// Lookup returns the controller for id, or nil. It refreshes the session.
func (s *Store) Lookup(id string) *Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	sess.lastSeen = s.now()
	return sess.ctrl
}

// Acquire returns the controller for id, creating a session (and a fresh
// id when id is empty or unparsable) if none exists. The returned id is the
// one to hand back to the visitor.
func (s *Store) Acquire(id string, messages i18n.Messages) (string, *Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.lastSeen = s.now()
		sess.ctrl.SetMessages(messages)
		return id, sess.ctrl
	}

	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	ctrl := s.newController(messages)
	s.sessions[id] = &session{ctrl: ctrl, lastSeen: s.now()}
	return id, ctrl
}

// Sweep drops sessions idle longer than the TTL, keeping any whose attempt
// is still in flight. It returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.After(cutoff) {
			continue
		}
		if sess.ctrl.State().Phase == PhaseSubmitting {
			continue
		}
		delete(s.sessions, id)
		removed++
	}
	return removed
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
