package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"folioapi/internal/catalog"
	"folioapi/internal/model"
	"folioapi/internal/search"
)

// RecordListResult is the service-level DTO for a filtered catalog view.
type RecordListResult struct {
	Items   []model.ContentRecord `json:"data"`
	Total   int                   `json:"total"`
	Applied search.Query          `json:"applied"`
}

// CatalogService defines the read use cases over the content catalogs.
type CatalogService interface {
	// List returns the records of domain narrowed and ordered by q.
	List(ctx context.Context, domain string, q search.Query) (*RecordListResult, error)

	// Get returns a single record by id.
	Get(ctx context.Context, domain string, id int) (*model.ContentRecord, error)

	// Categories returns the categories present in domain, first-seen order.
	Categories(ctx context.Context, domain string) ([]model.Category, error)

	// Related returns the records the detail of id points to.
	Related(ctx context.Context, domain string, id int) ([]model.ContentRecord, error)
}

type catalogService struct {
	catalogs *catalog.Set
	now      func() time.Time
}

// NewCatalogService constructs a CatalogService. now defaults to time.Now.
func NewCatalogService(catalogs *catalog.Set, now func() time.Time) CatalogService {
	if now == nil {
		now = time.Now
	}
	return &catalogService{catalogs: catalogs, now: now}
}

func (s *catalogService) List(ctx context.Context, domain string, q search.Query) (*RecordListResult, error) {
	_, span := startSpan(ctx, "CatalogService.List")
	defer span.End()
	span.SetAttributes(
		attribute.String("catalog.domain", domain),
		attribute.String("catalog.category", string(q.Category)),
		attribute.String("catalog.sort", string(q.Sort)),
	)

	st, err := storeFor(s.catalogs, domain)
	if err != nil {
		return nil, fail(span, err)
	}

	q.Sort = search.ParseSortOrder(string(q.Sort))
	items := search.Apply(st.GetAll(), q, s.now())
	span.SetAttributes(attribute.Int("catalog.results", len(items)))

	return &RecordListResult{Items: items, Total: len(items), Applied: q}, nil
}

func (s *catalogService) Get(ctx context.Context, domain string, id int) (*model.ContentRecord, error) {
	_, span := startSpan(ctx, "CatalogService.Get")
	defer span.End()
	span.SetAttributes(attribute.String("catalog.domain", domain), attribute.Int("catalog.id", id))

	st, err := storeFor(s.catalogs, domain)
	if err != nil {
		return nil, fail(span, err)
	}
	rec, ok := st.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (s *catalogService) Categories(ctx context.Context, domain string) ([]model.Category, error) {
	_, span := startSpan(ctx, "CatalogService.Categories")
	defer span.End()
	span.SetAttributes(attribute.String("catalog.domain", domain))

	st, err := storeFor(s.catalogs, domain)
	if err != nil {
		return nil, fail(span, err)
	}
	return st.Categories(), nil
}

func (s *catalogService) Related(ctx context.Context, domain string, id int) ([]model.ContentRecord, error) {
	_, span := startSpan(ctx, "CatalogService.Related")
	defer span.End()
	span.SetAttributes(attribute.String("catalog.domain", domain), attribute.Int("catalog.id", id))

	st, err := storeFor(s.catalogs, domain)
	if err != nil {
		return nil, fail(span, err)
	}
	related, ok := st.Related(id)
	if !ok {
		return nil, ErrNotFound
	}
	span.SetAttributes(attribute.Int("catalog.results", len(related)))
	return related, nil
}
