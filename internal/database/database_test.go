package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folioapi/internal/config"
)

func TestBuildPostgresDSN(t *testing.T) {
	base := config.DatabaseConfig{Host: "db", Port: "5432", User: "folio", Name: "catalog"}

	tests := []struct {
		name    string
		mutate  func(*config.DatabaseConfig)
		want    string
		wantErr bool
	}{
		{
			name: "password and sslmode",
			mutate: func(c *config.DatabaseConfig) {
				c.Password = "s3cret"
				c.SSLMode = "disable"
			},
			want: "postgres://folio:s3cret@db:5432/catalog?sslmode=disable",
		},
		{
			name:   "user only",
			mutate: func(c *config.DatabaseConfig) {},
			want:   "postgres://folio@db:5432/catalog",
		},
		{
			name:   "password is escaped",
			mutate: func(c *config.DatabaseConfig) { c.Password = "p@ss/word" },
			want:   "postgres://folio:p%40ss%2Fword@db:5432/catalog",
		},
		{name: "missing host", mutate: func(c *config.DatabaseConfig) { c.Host = "" }, wantErr: true},
		{name: "missing port", mutate: func(c *config.DatabaseConfig) { c.Port = "" }, wantErr: true},
		{name: "missing user", mutate: func(c *config.DatabaseConfig) { c.User = "" }, wantErr: true},
		{name: "missing name", mutate: func(c *config.DatabaseConfig) { c.Name = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			got, err := BuildPostgresDSN(c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// stubOpen points sqlOpen at a sqlmock handle and records the DSN it got.
func stubOpen(t *testing.T, db *sql.DB) *string {
	t.Helper()
	var dsn string
	orig := sqlOpen
	sqlOpen = func(_, dataSourceName string) (*sql.DB, error) {
		dsn = dataSourceName
		return db, nil
	}
	t.Cleanup(func() { sqlOpen = orig })
	return &dsn
}

func TestNewPostgres(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host: "db", Port: "5432", User: "folio", Name: "catalog",
		MaxOpenConns: 4, MaxIdleConns: 2, ConnMaxLifetimeSec: 60,
	}

	t.Run("pings and applies the pool", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		dsn := stubOpen(t, db)
		mock.ExpectPing()

		got, err := NewPostgres(context.Background(), cfg)
		require.NoError(t, err)
		assert.Same(t, db, got)
		assert.Equal(t, "postgres://folio@db:5432/catalog", *dsn)
		assert.Equal(t, 4, got.Stats().MaxOpenConnections)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid config never opens", func(t *testing.T) {
		stubOpen(t, nil)
		got, err := NewPostgres(context.Background(), config.DatabaseConfig{})
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("open error", func(t *testing.T) {
		orig := sqlOpen
		sqlOpen = func(string, string) (*sql.DB, error) { return nil, errors.New("boom") }
		t.Cleanup(func() { sqlOpen = orig })

		_, err := NewPostgres(context.Background(), cfg)
		assert.EqualError(t, err, "sql open: boom")
	})

	t.Run("ping error closes the handle", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		stubOpen(t, db)
		mock.ExpectPing().WillReturnError(errors.New("refused"))
		mock.ExpectClose()

		got, err := NewPostgres(context.Background(), cfg)
		assert.EqualError(t, err, "db ping: refused")
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNewSQLite(t *testing.T) {
	t.Run("single connection", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		dsn := stubOpen(t, db)
		mock.ExpectPing()

		got, err := NewSQLite(context.Background(), "folio.db")
		require.NoError(t, err)
		assert.Equal(t, "folio.db", *dsn)
		assert.Equal(t, 1, got.Stats().MaxOpenConnections)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := NewSQLite(context.Background(), "")
		assert.ErrorContains(t, err, "path is required")
	})
}

func TestOpen(t *testing.T) {
	app := &config.AppConfig{SQLitePath: "folio.db"}

	t.Run("sqlite", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		stubOpen(t, db)
		mock.ExpectPing()

		got, dialect, err := Open(context.Background(), config.SourceSQLite, app)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, DialectSQLite, dialect)
	})

	t.Run("static has no database", func(t *testing.T) {
		_, _, err := Open(context.Background(), config.SourceStatic, app)
		assert.ErrorContains(t, err, `catalog source "static"`)
	})
}

func TestAddress(t *testing.T) {
	app := &config.AppConfig{SQLitePath: "folio.db", Database: config.DatabaseConfig{Host: "db"}}
	assert.Equal(t, "folio.db", Address(DialectSQLite, app))
	assert.Equal(t, "db", Address(DialectPostgres, app))
}
