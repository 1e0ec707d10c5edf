// Package session keeps the per-visitor state (selections and theme) that
// a browser frontend would otherwise hold in ambient context.
package session

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"folioapi/internal/catalog"
	"folioapi/internal/model"
	"folioapi/internal/selection"
	"folioapi/internal/theme"
)

// DefaultCapacity bounds the number of live sessions kept in memory.
const DefaultCapacity = 10000

// Session is the state of one visitor.
type Session struct {
	ID    string
	Theme *theme.Store

	selections map[model.Domain]*selection.Store
}

// Selection returns the session's selection for domain.
func (s *Session) Selection(domain model.Domain) (*selection.Store, bool) {
	st, ok := s.selections[domain]
	return st, ok
}

// Registry creates sessions on demand and evicts the least recently used
// ones beyond its capacity. Evicted visitors start over with empty state.
type Registry struct {
	catalogs     *catalog.Set
	defaultTheme model.ThemeType

	mu    sync.Mutex
	cache *lru.Cache[string, *Session]
}

// NewRegistry returns a Registry whose sessions select from catalogs.
func NewRegistry(catalogs *catalog.Set, capacity int, defaultTheme model.ThemeType) (*Registry, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, *Session](capacity)
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Registry{catalogs: catalogs, defaultTheme: defaultTheme, cache: cache}, nil
}

// GetOrCreate returns the session with id, creating it on first use.
func (r *Registry) GetOrCreate(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.cache.Get(id); ok {
		return s
	}
	s := &Session{
		ID:         id,
		Theme:      theme.New(r.defaultTheme),
		selections: make(map[model.Domain]*selection.Store, len(model.Domains)),
	}
	for _, d := range model.Domains {
		if st, ok := r.catalogs.Store(d); ok {
			s.selections[d] = selection.New(st)
		}
	}
	r.cache.Add(id, s)
	return s
}

// Get returns an existing session without creating one. Read-only paths
// use it so that looking does not allocate state for unknown visitors.
func (r *Registry) Get(id string) (*Session, bool) {
	return r.cache.Get(id)
}

// DefaultTheme is the theme new sessions start on.
func (r *Registry) DefaultTheme() model.ThemeType {
	return theme.New(r.defaultTheme).Current()
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return r.cache.Len()
}
