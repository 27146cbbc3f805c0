package session

import "sync"

// State holds the live Session and broadcasts every transition to its
// subscribers, replaying the latest value to late joiners. It has exactly
// one writer (the Controller, plus auto-logout acting through it); readers
// take synchronous snapshots via Current.
type State struct {
	mu       sync.Mutex
	value    Session
	subs     []*subscriber
	nextID   int
	pending  []Session
	draining bool
}

type subscriber struct {
	id int
	fn func(Session)
}

// NewState creates a State holding the empty session.
func NewState() *State {
	return &State{}
}

// Current returns the latest session value.
func (s *State) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Subscribe registers fn and immediately delivers the current value before
// any future transition. It returns an unsubscribe func. Subscribers are
// notified in registration order. Registration is expected during wiring,
// before transitions begin.
func (s *State) Subscribe(fn func(Session)) func() {
	s.mu.Lock()
	s.nextID++
	sub := &subscriber{id: s.nextID, fn: fn}
	s.subs = append(s.subs, sub)
	cur := s.value
	s.mu.Unlock()

	fn(cur)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, c := range s.subs {
			if c.id == sub.id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Set replaces the session and notifies all subscribers. A transition's
// notifications are fully delivered before the next one begins: a Set made
// from inside a handler (or from another goroutine mid-notification) is
// queued and drained by the in-flight call rather than interleaved.
func (s *State) Set(v Session) {
	s.mu.Lock()
	s.pending = append(s.pending, v)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.value = next

		subs := make([]*subscriber, len(s.subs))
		copy(subs, s.subs)
		s.mu.Unlock()

		for _, sub := range subs {
			sub.fn(next)
		}

		s.mu.Lock()
	}
	s.draining = false
	s.mu.Unlock()
}
