package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NexaiGuy/nexai-website/internal/catalog"
)

// Store holds active wizard sessions in memory. Sessions live only for the
// duration of a visit: they expire after a TTL of inactivity and are removed
// on explicit exit. Access to each session is serialized through With.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	catalog *catalog.Catalog
	ttl     time.Duration
}

type entry struct {
	mu      sync.Mutex
	session *Session
	touched time.Time
}

// NewStore creates a session store. ttl bounds how long an idle session is
// kept; zero or negative falls back to 30 minutes.
func NewStore(cat *catalog.Catalog, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	st := &Store{
		entries: make(map[string]*entry),
		catalog: cat,
		ttl:     ttl,
	}
	// Periodically evict idle sessions to prevent memory growth.
	go st.cleanup()
	return st
}

// Open creates and opens a new session, returning its snapshot copy.
func (st *Store) Open() Session {
	s := NewSession(uuid.NewString(), st.catalog)
	_ = s.Open()

	st.mu.Lock()
	st.entries[s.ID] = &entry{session: s, touched: time.Now()}
	st.mu.Unlock()

	return *s
}

// With runs fn against the named session while holding its lock. The
// session's last-access time is refreshed on every call.
func (st *Store) With(id string, fn func(*Session) error) error {
	st.mu.RLock()
	e, ok := st.entries[id]
	st.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.touched = time.Now()
	return fn(e.session)
}

// Close resets and removes the named session.
func (st *Store) Close(id string) error {
	st.mu.Lock()
	e, ok := st.entries[id]
	if ok {
		delete(st.entries, id)
	}
	st.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	e.session.Reset()
	e.mu.Unlock()
	return nil
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.entries)
}

func (st *Store) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		st.evictIdle(time.Now())
	}
}

func (st *Store) evictIdle(now time.Time) {
	cutoff := now.Add(-st.ttl)
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, e := range st.entries {
		if e.touched.Before(cutoff) {
			delete(st.entries, id)
		}
	}
}
