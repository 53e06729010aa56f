// Package store holds the client-side source of truth for archive and
// classification collections and implements optimistic mutation with
// confirm/rollback semantics, plus idempotent merging of remote
// change-feed events.
//
// Every optimistic mutation must reach exactly one terminal outcome:
// the caller is obliged to invoke the matching confirm or rollback.
// The store never times out or rolls back on its own; a forgotten
// confirm leaves the record permanently optimistic and in flight.
package store

import (
	"fmt"
	"sync"
	"time"
)

// TempIDPrefix marks client-generated identifiers. Server identifiers
// are UUIDs, so prefixed temp ids can never collide with them.
const TempIDPrefix = "tmp-"

// Options wires a Store to its record type: identifier and timestamp
// accessors, copy-on-write setters, and the collection's canonical
// order (used when rolling back a delete or merging a feed insert).
type Options[T any] struct {
	ID             func(T) string
	UpdatedAt      func(T) time.Time
	WithID         func(T, string) T
	WithOptimistic func(T, bool) T
	Less           func(a, b T) bool
}

// Store is an in-memory collection with optimistic mutation
// primitives. All methods are safe for concurrent use; the mutex
// stands in for the single-threaded event loop of a UI runtime.
type Store[T any] struct {
	mu       sync.Mutex
	items    []T
	inFlight map[string]struct{}
	opts     Options[T]
	tempSeq  uint64
}

// New creates an empty Store.
func New[T any](opts Options[T]) *Store[T] {
	return &Store[T]{
		inFlight: make(map[string]struct{}),
		opts:     opts,
	}
}

// Replace swaps in a full authoritative snapshot, e.g. the initial
// fetch. In-flight state is preserved.
func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]T(nil), items...)
}

// Items returns a snapshot copy of the collection.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// InFlight reports whether the id is awaiting server confirmation.
func (s *Store[T]) InFlight(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[id]
	return ok
}

// AddOptimistic inserts a draft at the head of the collection under a
// session-unique temporary id and marks it in flight. It cannot fail.
func (s *Store[T]) AddOptimistic(draft T) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tempSeq++
	tempID := fmt.Sprintf("%s%d-%d", TempIDPrefix, time.Now().UnixNano(), s.tempSeq)

	item := s.opts.WithOptimistic(s.opts.WithID(draft, tempID), true)
	s.items = append([]T{item}, s.items...)
	s.inFlight[tempID] = struct{}{}
	return tempID
}

// ConfirmAdd replaces the temp record with the server's authoritative
// one, clearing the optimistic flag and in-flight membership. No-op if
// the temp id is gone.
func (s *Store[T]) ConfirmAdd(tempID string, server T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(tempID); i >= 0 {
		s.items[i] = s.opts.WithOptimistic(server, false)
	}
	delete(s.inFlight, tempID)
}

// RollbackAdd removes the rejected optimistic insert entirely.
func (s *Store[T]) RollbackAdd(tempID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(tempID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	delete(s.inFlight, tempID)
}

// UpdateOptimistic applies a patch to the record with the given id,
// marks it optimistic and in flight. Reports whether the id was found;
// an unknown id is a silent no-op.
func (s *Store[T]) UpdateOptimistic(id string, patch func(T) T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.items[i] = s.opts.WithOptimistic(patch(s.items[i]), true)
	s.inFlight[id] = struct{}{}
	return true
}

// ConfirmUpdate replaces the record with the server's version.
func (s *Store[T]) ConfirmUpdate(id string, server T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		s.items[i] = s.opts.WithOptimistic(server, false)
	}
	delete(s.inFlight, id)
}

// RollbackUpdate restores the caller-supplied pre-update snapshot.
func (s *Store[T]) RollbackUpdate(id string, original T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		s.items[i] = s.opts.WithOptimistic(original, false)
	}
	delete(s.inFlight, id)
}

// DeleteOptimistic removes the record and returns the removed snapshot
// so the caller can roll back. The id stays in flight until
// ConfirmDelete or RollbackDelete.
func (s *Store[T]) DeleteOptimistic(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	snapshot := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.inFlight[id] = struct{}{}
	return snapshot, true
}

// RollbackDelete re-inserts the snapshot at its canonical position.
func (s *Store[T]) RollbackDelete(snapshot T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertSorted(snapshot)
	delete(s.inFlight, s.opts.ID(snapshot))
}

// ConfirmDelete clears in-flight membership; the record is already gone.
func (s *Store[T]) ConfirmDelete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
}

// MergeRemote applies a change-feed insert or update. Merging is
// deduplicated by id: an existing record is only replaced when the
// incoming one is newer (last-write-wins on UpdatedAt), and records
// with a pending local mutation are left for their confirm/rollback to
// settle. Unknown ids insert at their canonical position.
func (s *Store[T]) MergeRemote(record T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.opts.ID(record)
	if _, pending := s.inFlight[id]; pending {
		return
	}
	if i := s.indexOf(id); i >= 0 {
		if s.opts.UpdatedAt(record).After(s.opts.UpdatedAt(s.items[i])) {
			s.items[i] = s.opts.WithOptimistic(record, false)
		}
		return
	}
	s.insertSorted(s.opts.WithOptimistic(record, false))
}

// RemoveRemote applies a change-feed delete. Ids with a pending local
// mutation are ignored.
func (s *Store[T]) RemoveRemote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, pending := s.inFlight[id]; pending {
		return
	}
	if i := s.indexOf(id); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
}

func (s *Store[T]) indexOf(id string) int {
	for i, item := range s.items {
		if s.opts.ID(item) == id {
			return i
		}
	}
	return -1
}

func (s *Store[T]) insertSorted(item T) {
	pos := len(s.items)
	for i := range s.items {
		if s.opts.Less(item, s.items[i]) {
			pos = i
			break
		}
	}
	s.items = append(s.items, item)
	copy(s.items[pos+1:], s.items[pos:])
	s.items[pos] = item
}
