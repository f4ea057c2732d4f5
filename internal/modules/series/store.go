package series

import "sync/atomic"

// Store holds the current raw series snapshot. Readers always observe a fully
// built snapshot: replacement swaps the pointer, never mutates in place, so
// concurrent analytics calls compute against a consistent table even while a
// refresh lands.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(NewSnapshot(nil, ""))
	return s
}

// Snapshot returns the current snapshot. Never nil.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Replace atomically swaps in a new snapshot.
func (s *Store) Replace(snap *Snapshot) {
	s.current.Store(snap)
}

// MarkStale flags the current snapshot as stale without touching its data.
// Used when a refresh fails: the prior table stays authoritative but callers
// are told it may be out of date. The swap is conditional on the snapshot it
// copied, so a concurrent Replace with fresh data is never overwritten by the
// stale copy of an older one.
func (s *Store) MarkStale() {
	for {
		old := s.current.Load()
		if old.Stale {
			return
		}
		stale := *old
		stale.Stale = true
		if s.current.CompareAndSwap(old, &stale) {
			return
		}
	}
}
