package index

import (
	"sync"
	"time"
)

// Store holds the current article snapshot and swaps it atomically on
// reloads. Readers always see a complete snapshot, never a half-built one.
type Store struct {
	mu         sync.RWMutex
	snapshot   *Snapshot
	lastReload time.Time // Timestamp of last content reload
	generation uint64    // Incremented on each swap, scopes cache keys
}

// NewStore creates a store holding an empty snapshot.
func NewStore() *Store {
	return &Store{
		snapshot: NewSnapshot(nil),
	}
}

// Replace swaps in a new snapshot.
func (st *Store) Replace(snapshot *Snapshot) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.snapshot = snapshot
	st.lastReload = time.Now()
	st.generation++
}

// Snapshot returns the current snapshot.
func (st *Store) Snapshot() *Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.snapshot
}

// LastReload returns the timestamp of the last content reload.
func (st *Store) LastReload() time.Time {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.lastReload
}

// Generation returns the current snapshot generation.
func (st *Store) Generation() uint64 {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.generation
}
