package importer

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"folioapi/internal/config"
	"folioapi/internal/database"
	"folioapi/internal/database/migration"
	"folioapi/internal/logging"
	"folioapi/internal/model"
	"folioapi/internal/repository/static"
	"folioapi/internal/storage"
)

// Config controls one import run.
type Config struct {
	Dir       string
	Target    string
	AssetsDir string
	DryRun    bool
}

// ParseConfig parses command-line flags into a Config.
func ParseConfig(flags *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	flags.StringVar(&cfg.Dir, "dir", "", "directory holding projects.yaml and timeline.yaml (default: embedded catalog)")
	flags.StringVar(&cfg.Target, "target", config.SourceSQLite, "catalog database to write: postgres or sqlite")
	flags.StringVar(&cfg.AssetsDir, "assets", "", "directory holding the referenced images, uploaded to MinIO when set")
	flags.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing anything")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Target = strings.ToLower(strings.TrimSpace(cfg.Target))
	switch cfg.Target {
	case config.SourcePostgres, config.SourceSQLite:
	default:
		return Config{}, fmt.Errorf("target must be postgres or sqlite, got %q", cfg.Target)
	}
	return cfg, nil
}

// Opener opens the catalog database for a target. database.Open is the
// production implementation.
type Opener func(ctx context.Context, target string, app *config.AppConfig) (*sql.DB, database.Dialect, error)

// Run validates the catalog, writes it to the target database and uploads
// images when an assets directory is given.
func Run(ctx context.Context, cfg Config, app *config.AppConfig, open Opener, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	log := logging.New(out, app.Location)

	var src fs.FS
	if cfg.Dir != "" {
		src = os.DirFS(cfg.Dir)
	}
	cat, err := Collect(ctx, static.NewRecordStatic(src))
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	log.Info("catalog_validated", map[string]any{
		"projects": len(cat[model.DomainProjects]),
		"timeline": len(cat[model.DomainTimeline]),
	})
	if cfg.DryRun {
		return nil
	}

	db, dialect, err := open(ctx, cfg.Target, app)
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.Target, err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, dialect, log, database.Address(dialect, app)); err != nil {
		return err
	}

	n, err := Write(ctx, db, dialect, cat)
	if err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	log.Info("catalog_written", map[string]any{"target": cfg.Target, "rows": n})

	if cfg.AssetsDir == "" {
		return nil
	}
	if !app.MinIO.Enabled() {
		return errors.New("assets given but MINIO_ENDPOINT is not set")
	}
	store, err := storage.NewMinIO(ctx, app.MinIO, true)
	if err != nil {
		return fmt.Errorf("object storage: %w", err)
	}
	res, err := UploadAssets(ctx, store, os.DirFS(cfg.AssetsDir), cat.Images())
	if err != nil {
		return err
	}
	log.Info("assets_uploaded", map[string]any{
		"uploaded": len(res.Uploaded),
		"missing":  res.Missing,
	})
	return nil
}
