package sqlite

import (
	"context"
	"database/sql"

	"folioapi/internal/model"
	"folioapi/internal/repository"
	"folioapi/internal/repository/sqlrow"
)

// RecordSQLite is a SQLite implementation of repository.RecordRepository
// for single-file deployments.
type RecordSQLite struct {
	db *sql.DB
}

// NewRecordSQLite creates a new RecordSQLite repository.
func NewRecordSQLite(db *sql.DB) *RecordSQLite {
	return &RecordSQLite{db: db}
}

var _ repository.RecordRepository = (*RecordSQLite)(nil)

// ListByDomain returns the domain's records ordered by authoring position.
func (r *RecordSQLite) ListByDomain(ctx context.Context, domain model.Domain) ([]model.ContentRecord, error) {
	const q = `
		SELECT ` + sqlrow.Columns + `
		FROM content_records
		WHERE domain = ?
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
