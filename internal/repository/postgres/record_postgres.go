package postgres

import (
	"context"
	"database/sql"

	"folioapi/internal/model"
	"folioapi/internal/repository"
	"folioapi/internal/repository/sqlrow"
)

// RecordPostgres is a PostgreSQL implementation of repository.RecordRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type RecordPostgres struct {
	db *sql.DB
}

// NewRecordPostgres creates a new RecordPostgres repository.
func NewRecordPostgres(db *sql.DB) *RecordPostgres {
	return &RecordPostgres{db: db}
}

var _ repository.RecordRepository = (*RecordPostgres)(nil)

// ListByDomain returns the domain's records ordered by authoring position.
func (r *RecordPostgres) ListByDomain(ctx context.Context, domain model.Domain) ([]model.ContentRecord, error) {
	const q = `
		SELECT ` + sqlrow.Columns + `
		FROM content_records
		WHERE domain = $1
		ORDER BY position ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, string(domain))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ContentRecord, 0)
	for rows.Next() {
		rec, err := sqlrow.Scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
