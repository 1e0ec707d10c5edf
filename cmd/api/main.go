package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/text/language"

	"folioapi/docs"
	"folioapi/internal/catalog"
	"folioapi/internal/config"
	"folioapi/internal/contact"
	"folioapi/internal/database"
	"folioapi/internal/database/migration"
	handlers "folioapi/internal/http/handler"
	"folioapi/internal/http/middleware"
	"folioapi/internal/i18n"
	"folioapi/internal/logging"
	"folioapi/internal/model"
	folioOtel "folioapi/internal/otel"
	"folioapi/internal/repository"
	"folioapi/internal/repository/postgres"
	"folioapi/internal/repository/sqlite"
	"folioapi/internal/repository/static"
	"folioapi/internal/service"
	"folioapi/internal/session"
	"folioapi/internal/storage"
)

// @title Folio API
// @version 1.0
// @description Portfolio content API: project catalog, career timeline, visitor selection and theme, contact form.
// @BasePath /
func main() {
	cfg := config.Load()
	log := logging.Stdout(cfg.Location)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := folioOtel.Init(ctx, log)
	if err != nil {
		fatal(log, "tracing_init_failed", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	repo, db, err := openCatalogSource(ctx, cfg, log)
	if err != nil {
		fatal(log, "catalog_source_failed", err)
	}
	if db != nil {
		defer db.Close()
	}

	// Catalogs are read once; a rejected catalog stops startup.
	catalogs, err := catalog.LoadSet(ctx, repo)
	if err != nil {
		fatal(log, "catalog_load_failed", err)
	}
	log.Info("catalog_loaded", map[string]any{"source": cfg.CatalogSource, "records": catalogs.Len()})

	// Recommendations and stack always ship with the binary.
	profile, err := catalog.LoadProfile(ctx, static.NewProfileStatic(nil))
	if err != nil {
		fatal(log, "profile_load_failed", err)
	}

	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO, false)
		if err != nil {
			fatal(log, "object_storage_failed", err)
		}
	} else {
		log.Info("object_storage_disabled", nil)
	}

	sessions, err := session.NewRegistry(catalogs, cfg.Session.Capacity, model.ThemeLight)
	if err != nil {
		fatal(log, "session_registry_failed", err)
	}

	smtpSender := contact.NewSMTPSender(cfg.SMTP)
	if !smtpSender.Configured() {
		log.Info("contact_delivery_disabled", nil)
	}

	svc := handlers.Services{
		Catalog:   service.NewCatalogService(catalogs, nil),
		Selection: service.NewSelectionService(catalogs, sessions),
		Theme:     service.NewThemeService(sessions),
		Asset:     service.NewAssetService(catalogs, objStore, cfg.AssetURLExpiry),
		Contact:   service.NewContactService(smtpSender),
		Profile:   service.NewProfileService(profile),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		fatal(log, "metrics_init_failed", err)
	}

	app := fiber.New(fiber.Config{
		Immutable:    true,
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())
	app.Use(middleware.Session(cfg.Session.CookieName))
	app.Use(middleware.Language(i18n.NewResolver(language.Make(cfg.DefaultLang))))

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, catalogs, db, svc)

	go func() {
		<-ctx.Done()
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info("server_starting", map[string]any{"port": cfg.Port, "app_host": cfg.AppHost})
	if err := app.Listen(":" + cfg.Port); err != nil {
		fatal(log, "server_failed", err)
	}
}

// openCatalogSource returns the repository for CATALOG_SOURCE and, for SQL
// sources, the migrated database handle.
func openCatalogSource(ctx context.Context, cfg *config.AppConfig, log *logging.Logger) (repository.RecordRepository, *sql.DB, error) {
	if cfg.CatalogSource == config.SourceStatic {
		return static.NewRecordStatic(nil), nil, nil
	}

	db, dialect, err := database.Open(ctx, cfg.CatalogSource, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := migration.EnsureMigrated(ctx, db, dialect, log, database.Address(dialect, cfg)); err != nil {
		db.Close()
		return nil, nil, err
	}
	if dialect == database.DialectPostgres {
		return postgres.NewRecordPostgres(db), db, nil
	}
	return sqlite.NewRecordSQLite(db), db, nil
}

func fatal(log *logging.Logger, msg string, err error) {
	log.Error(msg, err, nil)
	os.Exit(1)
}
