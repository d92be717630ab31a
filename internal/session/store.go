package session

import (
	"sync"

	"gocsvlab/domain/core"
	"gocsvlab/internal/metrics"
)

// Store keeps sessions addressable by ID
type Store interface {
	Put(s *Session)
	Get(id core.SessionID) (*Session, error)
	Delete(id core.SessionID) error
	Len() int
}

// MemoryStore is an in-process Store. When the limit is reached the
// least recently created session is evicted.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*Session
	order    []core.SessionID
	limit    int
	metrics  *metrics.Metrics
}

// NewMemoryStore creates a store holding at most limit sessions; limit <= 0 means unbounded
func NewMemoryStore(limit int, m *metrics.Metrics) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[core.SessionID]*Session),
		limit:    limit,
		metrics:  m,
	}
}

// Put adds or replaces a session
func (st *MemoryStore) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.sessions[s.ID()]; !exists {
		st.order = append(st.order, s.ID())
	}
	st.sessions[s.ID()] = s

	for st.limit > 0 && len(st.order) > st.limit {
		oldest := st.order[0]
		st.order = st.order[1:]
		delete(st.sessions, oldest)
	}
	st.metrics.SetActiveSessions(len(st.sessions))
}

// Get returns the session with id
func (st *MemoryStore) Get(id core.SessionID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, core.NewNotFoundError("session", id.String())
	}
	return s, nil
}

// Delete removes the session with id
func (st *MemoryStore) Delete(id core.SessionID) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return core.NewNotFoundError("session", id.String())
	}
	delete(st.sessions, id)
	for i, o := range st.order {
		if o == id {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	st.metrics.SetActiveSessions(len(st.sessions))
	return nil
}

// Len returns the number of sessions held
func (st *MemoryStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
