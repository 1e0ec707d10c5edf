// Package config maps environment variables onto typed settings.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Catalog sources accepted by CATALOG_SOURCE.
const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether an asset endpoint was configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// SMTPConfig holds outgoing mail settings for the contact form.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string
}

// SessionConfig controls the visitor session registry.
type SessionConfig struct {
	Capacity   int
	CookieName string
}

// AppConfig is everything the API and the importer read from the
// environment. Secrets have no defaults.
type AppConfig struct {
	AppHost        string
	Port           string
	Location       *time.Location
	CatalogSource  string
	SQLitePath     string
	DefaultLang    string
	AssetURLExpiry time.Duration
	Database       DatabaseConfig
	MinIO          MinIOConfig
	SMTP           SMTPConfig
	Session        SessionConfig
}

// Load reads the environment. Both commands import
// github.com/joho/godotenv/autoload, so a .env file fills in whatever the
// real environment leaves unset.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:8080"),
		Port:           getEnv("PORT", "8080"),
		Location:       getEnvLocation("TZ", time.UTC),
		CatalogSource:  getEnvSource("CATALOG_SOURCE", SourceStatic),
		SQLitePath:     getEnv("SQLITE_PATH", "folio.db"),
		DefaultLang:    getEnv("DEFAULT_LANG", "fr"),
		AssetURLExpiry: time.Duration(getEnvInt("ASSET_URL_EXPIRY_SEC", 900)) * time.Second,
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvInt("SMTP_PORT", 587),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			To:       getEnv("CONTACT_TO", ""),
		},
		Session: SessionConfig{
			Capacity:   getEnvInt("SESSION_CAPACITY", 10000),
			CookieName: getEnv("SESSION_COOKIE", "folio_session"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	return getEnvParsed(key, def, strconv.ParseBool)
}

func getEnvInt(key string, def int) int {
	return getEnvParsed(key, def, strconv.Atoi)
}

func getEnvLocation(key string, def *time.Location) *time.Location {
	return getEnvParsed(key, def, time.LoadLocation)
}

// getEnvParsed returns def when key is unset or does not parse.
func getEnvParsed[T any](key string, def T, parse func(string) (T, error)) T {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if parsed, err := parse(v); err == nil {
		return parsed
	}
	return def
}

// getEnvSource falls back to def for anything outside the known sources.
func getEnvSource(key, def string) string {
	switch v := strings.ToLower(strings.TrimSpace(os.Getenv(key))); v {
	case SourceStatic, SourcePostgres, SourceSQLite:
		return v
	default:
		return def
	}
}
