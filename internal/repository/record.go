package repository

import (
	"context"

	"folioapi/internal/model"
)

// RecordRepository reads the authored content records of a domain.
// Sources are read once at startup; there are no write operations.
type RecordRepository interface {
	// ListByDomain returns every record of domain in authoring order.
	// A domain without records yields an empty slice, not an error.
	ListByDomain(ctx context.Context, domain model.Domain) ([]model.ContentRecord, error)
}
