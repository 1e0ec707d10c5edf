// Package catalog holds the immutable, in-memory record sets served by the
// API. A Store is built once at startup and never changes afterwards.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"folioapi/internal/model"
	"folioapi/internal/repository"
	"folioapi/internal/search"
)

var (
	ErrDuplicateID     = errors.New("duplicate record id")
	ErrUnknownCategory = errors.New("category not in domain enumeration")
	ErrEmptyTitle      = errors.New("record title is empty")
	ErrUnknownRelated  = errors.New("related record not in catalog")
)

// Store is a read-only facade over one domain's records.
type Store struct {
	domain  model.Domain
	records []model.ContentRecord
	index   map[int]int
}

// New validates records against the authoring invariants of domain and
// returns a Store owning a private copy of them.
func New(domain model.Domain, records []model.ContentRecord) (*Store, error) {
	s := &Store{
		domain:  domain,
		records: make([]model.ContentRecord, 0, len(records)),
		index:   make(map[int]int, len(records)),
	}
	for _, r := range records {
		if _, dup := s.index[r.ID]; dup {
			return nil, fmt.Errorf("%s record %d: %w", domain, r.ID, ErrDuplicateID)
		}
		if strings.TrimSpace(r.Title) == "" {
			return nil, fmt.Errorf("%s record %d: %w", domain, r.ID, ErrEmptyTitle)
		}
		if !domain.Allows(r.Category) {
			return nil, fmt.Errorf("%s record %d (%q): %w", domain, r.ID, r.Category, ErrUnknownCategory)
		}
		r = r.Clone()
		if r.Tags == nil {
			r.Tags = []string{}
		}
		s.index[r.ID] = len(s.records)
		s.records = append(s.records, r)
	}
	for _, r := range s.records {
		if r.Detail == nil {
			continue
		}
		for _, rel := range r.Detail.RelatedIDs {
			if _, ok := s.index[rel]; !ok || rel == r.ID {
				return nil, fmt.Errorf("%s record %d related %d: %w", domain, r.ID, rel, ErrUnknownRelated)
			}
		}
	}
	return s, nil
}

// Load reads domain's records from repo once and builds a Store.
func Load(ctx context.Context, repo repository.RecordRepository, domain model.Domain) (*Store, error) {
	records, err := repo.ListByDomain(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", domain, err)
	}
	return New(domain, records)
}

// Domain returns the domain the store serves.
func (s *Store) Domain() model.Domain { return s.domain }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// GetAll returns the ordered record sequence. Every call returns the same
// backing slice; callers must not modify it.
func (s *Store) GetAll() []model.ContentRecord {
	return s.records
}

// Find looks a record up by id. The result is a copy the caller may keep.
func (s *Store) Find(id int) (model.ContentRecord, bool) {
	i, ok := s.index[id]
	if !ok {
		return model.ContentRecord{}, false
	}
	return s.records[i].Clone(), true
}

// Related resolves the related records listed in the detail of id, in
// authoring order. ok is false when id is not in the store.
func (s *Store) Related(id int) (related []model.ContentRecord, ok bool) {
	rec, ok := s.Find(id)
	if !ok {
		return nil, false
	}
	related = []model.ContentRecord{}
	if rec.Detail == nil {
		return related, true
	}
	for _, rel := range rec.Detail.RelatedIDs {
		if r, found := s.Find(rel); found {
			related = append(related, r)
		}
	}
	return related, true
}

// Categories returns the distinct categories present in the store.
func (s *Store) Categories() []model.Category {
	return search.Categories(s.records)
}

// HasImage reports whether key is referenced by any record.
func (s *Store) HasImage(key string) bool {
	for _, r := range s.records {
		for _, img := range r.Images {
			if img == key {
				return true
			}
		}
	}
	return false
}

// Set groups the stores of every domain.
type Set struct {
	stores map[model.Domain]*Store
}

// LoadSet builds a Store for each of model.Domains from repo.
func LoadSet(ctx context.Context, repo repository.RecordRepository) (*Set, error) {
	set := &Set{stores: make(map[model.Domain]*Store, len(model.Domains))}
	for _, d := range model.Domains {
		st, err := Load(ctx, repo, d)
		if err != nil {
			return nil, err
		}
		set.stores[d] = st
	}
	return set, nil
}

// NewSet assembles a Set from already built stores.
func NewSet(stores ...*Store) *Set {
	set := &Set{stores: make(map[model.Domain]*Store, len(stores))}
	for _, st := range stores {
		set.stores[st.Domain()] = st
	}
	return set
}

// Store returns the store of domain.
func (s *Set) Store(domain model.Domain) (*Store, bool) {
	st, ok := s.stores[domain]
	return st, ok
}

// HasImage reports whether any store references key.
func (s *Set) HasImage(key string) bool {
	for _, st := range s.stores {
		if st.HasImage(key) {
			return true
		}
	}
	return false
}

// Len returns the number of records across every store.
func (s *Set) Len() int {
	n := 0
	for _, st := range s.stores {
		n += st.Len()
	}
	return n
}
