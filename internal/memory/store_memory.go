package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	pkgLog "travel-assistant/pkg/log"
)

// MemoryStore keeps sessions in process, evicting the least recently used
// once maxSessions is reached and expiring idle ones after ttl.
type MemoryStore struct {
	cache *expirable.LRU[string, *Session]
	l     pkgLog.Logger
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-process store.
func NewMemoryStore(l pkgLog.Logger, maxSessions int, ttl time.Duration) *MemoryStore {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &MemoryStore{l: l}
	s.cache = expirable.NewLRU[string, *Session](maxSessions, s.onEvict, ttl)
	return s
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrEmptySessionID
	}
	s, ok := m.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *MemoryStore) Save(ctx context.Context, id string, s *Session) error {
	if id == "" {
		return ErrEmptySessionID
	}
	m.cache.Add(id, s)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptySessionID
	}
	m.cache.Remove(id)
	return nil
}

// Len returns the number of live sessions.
func (m *MemoryStore) Len() int {
	return m.cache.Len()
}

func (m *MemoryStore) onEvict(id string, s *Session) {
	m.l.Debugf(context.Background(), "%s: evicted session %s (%d interactions)", LogPrefixMemoryStore, id, s.Len())
}
