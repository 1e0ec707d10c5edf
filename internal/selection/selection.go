// Package selection tracks which single record a visitor has opened for
// detail display.
package selection

import (
	"sync"

	"folioapi/internal/model"
)

// Finder resolves a record by id. *catalog.Store satisfies it.
type Finder interface {
	Find(id int) (model.ContentRecord, bool)
}

// Store holds at most one selected record. The zero selection is empty.
// A Store is safe for concurrent use.
type Store struct {
	finder Finder

	mu      sync.RWMutex
	current *model.ContentRecord
}

// New returns an empty selection resolving ids through finder.
func New(finder Finder) *Store {
	return &Store{finder: finder}
}

// Select makes the record with id current and reports whether it exists.
// On a miss the previous selection is kept as is.
func (s *Store) Select(id int) bool {
	rec, ok := s.finder.Find(id)
	if !ok {
		return false
	}
	s.mu.Lock()
	s.current = &rec
	s.mu.Unlock()
	return true
}

// Toggle selects id, or clears the selection when id is already current.
// It reports whether a record is selected afterwards.
func (s *Store) Toggle(id int) bool {
	rec, ok := s.finder.Find(id)
	if !ok {
		return s.has()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.current.ID == id {
		s.current = nil
		return false
	}
	s.current = &rec
	return true
}

// Current returns the selected record, if any.
func (s *Store) Current() (model.ContentRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return model.ContentRecord{}, false
	}
	return *s.current, true
}

// Clear resets the selection to empty.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *Store) has() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}
