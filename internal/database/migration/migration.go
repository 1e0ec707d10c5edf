// Package migration creates the content_records schema the SQL catalog
// sources read from.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"folioapi/internal/database"
	"folioapi/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Tags, details and images hold JSON arrays. detail holds a JSON object
// and stays empty for records without one.
const contentRecordsColumns = `
  domain        TEXT    NOT NULL CHECK (domain IN ('projects', 'timeline')),
  id            INTEGER NOT NULL,
  position      INTEGER NOT NULL,
  title         TEXT    NOT NULL CHECK (title <> ''),
  category      TEXT    NOT NULL,
  description   TEXT    NOT NULL DEFAULT '',
  tags          TEXT    NOT NULL DEFAULT '[]',
  date_span     TEXT    NOT NULL DEFAULT '',
  publish_date  TEXT    NOT NULL DEFAULT '',
  location      TEXT    NOT NULL DEFAULT '',
  details       TEXT    NOT NULL DEFAULT '[]',
  images        TEXT    NOT NULL DEFAULT '[]',
  link_demo     TEXT    NOT NULL DEFAULT '',
  link_code     TEXT    NOT NULL DEFAULT '',
  link_external TEXT    NOT NULL DEFAULT '',
  detail        TEXT    NOT NULL DEFAULT '',
  PRIMARY KEY (domain, id)
`

func stepsFor(d database.Dialect) []migrationStep {
	table := "CREATE TABLE IF NOT EXISTS content_records (" + contentRecordsColumns + ")"
	if d == database.DialectSQLite {
		table += " WITHOUT ROWID"
	}
	return []migrationStep{
		{Name: "create_table_content_records", SQL: table + ";"},
		{
			Name: "create_index_content_records_position",
			SQL:  "CREATE INDEX IF NOT EXISTS idx_content_records_position ON content_records (domain, position);",
		},
	}
}

func sentinelQuery(d database.Dialect) string {
	if d == database.DialectSQLite {
		return "SELECT COUNT(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = 'content_records'"
	}
	return "SELECT to_regclass('public.content_records') IS NOT NULL"
}

// migrationLog stamps every event of one run with the same envelope.
type migrationLog struct {
	log    *logging.Logger
	dbHost string
	start  time.Time
}

func (m migrationLog) event(event, status string, fields map[string]any) {
	entry := map[string]any{
		"component": "database",
		"event":     event,
		"status":    status,
		"db_host":   m.dbHost,
	}
	for k, v := range fields {
		entry[k] = v
	}
	m.log.Log(entry)
}

func (m migrationLog) elapsed() int64 {
	return time.Since(m.start).Milliseconds()
}

// EnsureMigrated creates the schema unless the content_records table
// already exists. Steps run in order and stop at the first failure.
func EnsureMigrated(ctx context.Context, db *sql.DB, dialect database.Dialect, log *logging.Logger, dbHost string) error {
	m := migrationLog{log: log, dbHost: dbHost, start: time.Now()}
	m.event("db_migration_check", "starting", map[string]any{"dialect": string(dialect)})

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery(dialect)).Scan(&exists); err != nil {
		err = fmt.Errorf("failed to check sentinel table: %w", err)
		m.event("db_migration_failed", "error", map[string]any{
			"error_message": err.Error(),
			"duration_ms":   m.elapsed(),
		})
		return err
	}
	if exists {
		m.event("db_migration_skip", "success", map[string]any{
			"msg":         "schema already exists, skipping migration",
			"duration_ms": m.elapsed(),
		})
		return nil
	}

	m.event("db_migration_start", "in_progress", nil)
	for _, step := range stepsFor(dialect) {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			m.event("db_migration_failed", "error", map[string]any{
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"duration_ms":      m.elapsed(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		m.event("db_migration_step", "success", map[string]any{
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	m.event("db_migration_success", "success", map[string]any{"duration_ms": m.elapsed()})
	return nil
}
