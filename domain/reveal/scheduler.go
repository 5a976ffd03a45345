package reveal

import (
	"fmt"
	"sync"
	"time"
)

// Scheduler tracks the regions of one page view. Entries are independent:
// signals may arrive in any order and only ever affect their own entry.
type Scheduler struct {
	now    func() time.Time
	onFire func(Entry)

	mu      sync.Mutex
	entries map[string]*Entry
	order   []string
}

type Option func(*Scheduler)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// OnFire registers a callback run once per entry when it fires.
func OnFire(fn func(Entry)) Option {
	return func(s *Scheduler) { s.onFire = fn }
}

func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		now:     time.Now,
		entries: make(map[string]*Entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Observe starts watching a region. Observing an id again returns the
// existing entry unchanged.
func (s *Scheduler) Observe(id string, delay time.Duration) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[id]; ok {
		return *e
	}
	if delay < 0 {
		delay = 0
	}
	e := &Entry{ID: id, Delay: delay}
	s.entries[id] = e
	s.order = append(s.order, id)
	return *e
}

// Intersect delivers a viewport signal for id. The first visible signal
// fires the entry and returns true; every later signal is ignored,
// including the region leaving the viewport. The browser observer in
// web/static/js/reveal.js follows the same rule.
func (s *Scheduler) Intersect(id string, visible bool) (bool, error) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok {
		s.mu.Unlock()
		return false, fmt.Errorf("%w: %q", ErrUnknownRegion, id)
	}
	if e.HasFired || !visible {
		s.mu.Unlock()
		return false, nil
	}
	e.HasFired = true
	e.FiredAt = s.now()
	fired := *e
	s.mu.Unlock()

	if s.onFire != nil {
		s.onFire(fired)
	}
	return true, nil
}

// Entry returns a copy of the entry for id.
func (s *Scheduler) Entry(id string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Frame returns the current visual state of id.
func (s *Scheduler) Frame(id string) (Frame, bool) {
	e, ok := s.Entry(id)
	if !ok {
		return Frame{}, false
	}
	return e.FrameAt(s.now()), true
}

// Entries returns copies of all entries in observation order.
func (s *Scheduler) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.entries[id])
	}
	return out
}

// Len returns the number of observed regions.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
