package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"folioapi/internal/catalog"
	"folioapi/internal/model"
	"folioapi/internal/selection"
	"folioapi/internal/session"
)

// SelectionResult reports whether the requested id matched a record and
// which record is current afterwards.
type SelectionResult struct {
	Matched bool                 `json:"matched"`
	Current *model.ContentRecord `json:"current"`
}

// SelectionService drives the per-session selection of each catalog.
type SelectionService interface {
	// Select makes id current. A miss keeps the previous selection.
	Select(ctx context.Context, sessionID, domain string, id int) (*SelectionResult, error)

	// Toggle selects id, or clears when id is already current.
	Toggle(ctx context.Context, sessionID, domain string, id int) (*SelectionResult, error)

	// Current returns the selection without changing it.
	Current(ctx context.Context, sessionID, domain string) (*SelectionResult, error)

	// Clear empties the selection.
	Clear(ctx context.Context, sessionID, domain string) (*SelectionResult, error)
}

type selectionService struct {
	catalogs *catalog.Set
	sessions *session.Registry
}

// NewSelectionService constructs a SelectionService.
func NewSelectionService(catalogs *catalog.Set, sessions *session.Registry) SelectionService {
	return &selectionService{catalogs: catalogs, sessions: sessions}
}

func (s *selectionService) selectionFor(sessionID, domain string) (*catalog.Store, *selection.Store, error) {
	st, err := storeFor(s.catalogs, domain)
	if err != nil {
		return nil, nil, err
	}
	sel, ok := s.sessions.GetOrCreate(sessionID).Selection(st.Domain())
	if !ok {
		return nil, nil, ErrUnknownDomain
	}
	return st, sel, nil
}

func result(matched bool, sel *selection.Store) *SelectionResult {
	res := &SelectionResult{Matched: matched}
	if rec, ok := sel.Current(); ok {
		res.Current = &rec
	}
	return res
}

func (s *selectionService) Select(ctx context.Context, sessionID, domain string, id int) (*SelectionResult, error) {
	_, span := startSpan(ctx, "SelectionService.Select")
	defer span.End()
	span.SetAttributes(attribute.String("catalog.domain", domain), attribute.Int("catalog.id", id))

	_, sel, err := s.selectionFor(sessionID, domain)
	if err != nil {
		return nil, fail(span, err)
	}
	matched := sel.Select(id)
	span.SetAttributes(attribute.Bool("selection.matched", matched))
	return result(matched, sel), nil
}

func (s *selectionService) Toggle(ctx context.Context, sessionID, domain string, id int) (*SelectionResult, error) {
	_, span := startSpan(ctx, "SelectionService.Toggle")
	defer span.End()
	span.SetAttributes(attribute.String("catalog.domain", domain), attribute.Int("catalog.id", id))

	st, sel, err := s.selectionFor(sessionID, domain)
	if err != nil {
		return nil, fail(span, err)
	}
	_, matched := st.Find(id)
	sel.Toggle(id)
	return result(matched, sel), nil
}

func (s *selectionService) Current(ctx context.Context, sessionID, domain string) (*SelectionResult, error) {
	_, span := startSpan(ctx, "SelectionService.Current")
	defer span.End()
	span.SetAttributes(attribute.String("catalog.domain", domain))

	st, err := storeFor(s.catalogs, domain)
	if err != nil {
		return nil, fail(span, err)
	}
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return &SelectionResult{}, nil
	}
	sel, ok := sess.Selection(st.Domain())
	if !ok {
		return nil, fail(span, ErrUnknownDomain)
	}
	_, ok = sel.Current()
	return result(ok, sel), nil
}

func (s *selectionService) Clear(ctx context.Context, sessionID, domain string) (*SelectionResult, error) {
	_, span := startSpan(ctx, "SelectionService.Clear")
	defer span.End()
	span.SetAttributes(attribute.String("catalog.domain", domain))

	_, sel, err := s.selectionFor(sessionID, domain)
	if err != nil {
		return nil, fail(span, err)
	}
	sel.Clear()
	return result(false, sel), nil
}
