package orchestrator

import "sync"

// sessionLocks serialises work per session ID. Entries live only while a
// holder or waiter exists.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

// lock blocks until id is free and returns the matching unlock.
func (s *sessionLocks) lock(id string) func() {
	s.mu.Lock()
	sl, ok := s.locks[id]
	if !ok {
		sl = &sessionLock{}
		s.locks[id] = sl
	}
	sl.refs++
	s.mu.Unlock()

	sl.mu.Lock()
	return func() {
		sl.mu.Unlock()
		s.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

func (s *sessionLocks) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}
